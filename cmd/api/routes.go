package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/roadsafety-dashboard/roadsafety/internal/app"
	"github.com/roadsafety-dashboard/roadsafety/internal/restapi"
	"github.com/roadsafety-dashboard/roadsafety/internal/webui"
)

// routes wires the JSON API and the dashboard onto one router. The returned
// RestAPI must be shut down to stop its rate limiter.
func routes(application *app.Application) (http.Handler, *restapi.RestAPI) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	webui.NewWebUI(application).SetWebUIRoutes(router)

	var handler http.Handler = router
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)

	return handler, api
}
