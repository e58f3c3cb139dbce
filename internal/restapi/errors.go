package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
	"github.com/roadsafety-dashboard/roadsafety/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// invalidAPIKeyResponse sends a 401 Unauthorized response for invalid API keys
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))
	api.writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) writeError(w http.ResponseWriter, r *http.Request, code int, text string) {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}

	setJSONResponseType(w)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err,
			slog.Int("code", code))
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err)
	}
}
