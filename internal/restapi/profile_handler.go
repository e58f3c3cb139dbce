package restapi

import (
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/models"
	"github.com/roadsafety-dashboard/roadsafety/internal/utils"
)

// profileHandler answers with the full resolved profile. Unknown entities
// get an empty profile rather than a 404.
func (api *RestAPI) profileHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := api.ValidateEntity(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	profile := api.Profiles.Build(id)
	api.sendResponse(w, r, models.NewEntryResponse(profile, api.references()))
}
