package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// protect applies rate limiting and API key validation
func (api *RestAPI) protect(h handlerFunc) http.Handler {
	handler := validateAPIKey(api, h)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	return handler
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.NotFound = http.HandlerFunc(api.sendNotFound)

	router.Handler(http.MethodGet, "/api/where/entities.json", api.protect(api.entitiesHandler))
	router.Handler(http.MethodGet, "/api/where/profile/:id", api.protect(api.profileHandler))
	router.Handler(http.MethodGet, "/api/where/indicator/:id", api.protect(api.indicatorHandler))
	router.Handler(http.MethodGet, "/api/where/indicator-list/:id", api.protect(api.indicatorListHandler))
	router.Handler(http.MethodGet, "/api/where/breakdown/:id", api.protect(api.breakdownHandler))
}
