package restapi

import (
	"fmt"
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/models"
	"github.com/roadsafety-dashboard/roadsafety/internal/profile"
	"github.com/roadsafety-dashboard/roadsafety/internal/utils"
)

type indicatorQuery struct {
	entity        string
	indicatorType string
	kind          indicator.Kind
	match         indicator.TypeMatcher
}

// parseIndicatorQuery reads :id, type, kind and match. match=contains selects
// every indicator type containing the given text, ignoring case.
func (api *RestAPI) parseIndicatorQuery(r *http.Request, requireType bool) (indicatorQuery, map[string][]string) {
	fieldErrors := make(map[string][]string)
	params := r.URL.Query()

	q := indicatorQuery{
		entity:        utils.ExtractIDFromParams(r, "id"),
		indicatorType: params.Get("type"),
	}

	if err := api.ValidateEntity(q.entity); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}

	if q.indicatorType != "" || requireType {
		if err := utils.ValidateIndicatorType(q.indicatorType); err != nil {
			fieldErrors["type"] = append(fieldErrors["type"], err.Error())
		}
	}

	kind, ok := indicator.ParseKind(params.Get("kind"))
	if !ok {
		fieldErrors["kind"] = append(fieldErrors["kind"], fmt.Sprintf("Invalid field value for field %q.", "kind"))
	}
	q.kind = kind

	switch params.Get("match") {
	case "", "exact":
		q.match = indicator.TypeEquals(q.indicatorType)
	case "contains":
		needle, err := utils.ValidateAndSanitizeQuery(q.indicatorType)
		if err != nil {
			fieldErrors["type"] = append(fieldErrors["type"], err.Error())
		}
		q.match = indicator.TypeContains(needle)
	default:
		fieldErrors["match"] = append(fieldErrors["match"], fmt.Sprintf("Invalid field value for field %q.", "match"))
	}

	return q, fieldErrors
}

func (api *RestAPI) indicatorHandler(w http.ResponseWriter, r *http.Request) {
	q, fieldErrors := api.parseIndicatorQuery(r, true)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	resolver := api.Profiles.Resolver()
	subset := indicator.SelectEntity(api.Dataset.Records(), q.entity)
	value := resolver.LookupScalarMatching(subset, q.match, q.kind)

	entry := models.ScalarIndicator{
		Entity:        q.entity,
		IndicatorType: q.indicatorType,
		Kind:          q.kind.String(),
		Value:         value,
		Display:       profile.Display(value, profile.NoData),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.references()))
}

func (api *RestAPI) indicatorListHandler(w http.ResponseWriter, r *http.Request) {
	q, fieldErrors := api.parseIndicatorQuery(r, true)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	resolver := api.Profiles.Resolver()
	subset := indicator.SelectEntity(api.Dataset.Records(), q.entity)

	entry := models.IndicatorList{
		Entity:        q.entity,
		IndicatorType: q.indicatorType,
		Kind:          q.kind.String(),
		Values:        resolver.LookupManyMatching(subset, q.match, q.kind),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.references()))
}
