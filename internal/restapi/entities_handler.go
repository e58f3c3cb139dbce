package restapi

import (
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/models"
)

func (api *RestAPI) entitiesHandler(w http.ResponseWriter, r *http.Request) {
	keys := api.Dataset.Entities()
	entities := make([]models.EntityModel, 0, len(keys))
	for _, key := range keys {
		entities = append(entities, models.EntityModel{
			ID:          key,
			RecordCount: api.Dataset.RecordCount(key),
		})
	}

	api.sendResponse(w, r, models.NewListResponse(entities, api.references()))
}
