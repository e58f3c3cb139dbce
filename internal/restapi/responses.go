package restapi

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(w)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(w)
	w.WriteHeader(http.StatusNotFound)

	response := models.NewResponse(http.StatusNotFound, nil, "resource not found")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

// references describes the dataset every response was resolved against
func (api *RestAPI) references() models.ReferencesModel {
	refs := models.NewEmptyReferences()
	if api.Dataset != nil {
		stats := api.Dataset.Statistics()
		refs.Dataset = models.NewDatasetReference(stats.Source, stats.Records, stats.Entities, stats.LoadedAt)
	}
	if api.Profiles != nil {
		refs.Sentinels = sortedSentinels(api.Profiles.Resolver().Sentinels())
	}
	return refs
}

func sortedSentinels(set indicator.SentinelSet) []string {
	members := set.Members()
	slices.Sort(members)
	return members
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
