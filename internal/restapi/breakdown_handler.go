package restapi

import (
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/models"
	"github.com/roadsafety-dashboard/roadsafety/internal/profile"
)

// breakdownHandler defaults to the road user death distribution when no
// type is given.
func (api *RestAPI) breakdownHandler(w http.ResponseWriter, r *http.Request) {
	q, fieldErrors := api.parseIndicatorQuery(r, false)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if q.indicatorType == "" {
		q.indicatorType = profile.DeathDistribution
	}

	subset := indicator.SelectEntity(api.Dataset.Records(), q.entity)
	shares := api.Profiles.Resolver().PercentageShareBreakdown(subset, q.indicatorType)

	entry := models.NewShareBreakdown(q.entity, q.indicatorType, shares)
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.references()))
}
