package restapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
)

// statusRecorder keeps the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

const apiPrefix = "/api/where/"

// requestRoute names the endpoint a request addresses and the entity key it
// asks about. API ids come from the path; the dashboard, chart and debug
// pages take ?entity=.
func requestRoute(r *http.Request) (route, entity string) {
	path := r.URL.Path

	if rest, ok := strings.CutPrefix(path, apiPrefix); ok {
		name, id, found := strings.Cut(rest, "/")
		if !found {
			return strings.TrimSuffix(name, ".json"), ""
		}
		return name, strings.TrimSuffix(id, ".json")
	}

	entity = r.URL.Query().Get("entity")
	switch {
	case path == "/":
		return "dashboard", entity
	case strings.HasPrefix(path, "/chart/"):
		return "chart", entity
	case strings.HasPrefix(path, "/debug/"):
		return "debug", entity
	default:
		return "other", entity
	}
}

// NewRequestLoggingMiddleware logs one line per request with its route and
// entity, and puts logger on the request context for handlers.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route, entity := requestRoute(r)

			r = r.WithContext(logging.WithLogger(r.Context(), logger))
			recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(recorder, r)

			attrs := []slog.Attr{
				slog.String("route", route),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"),
			}
			if entity != "" {
				attrs = append(attrs, slog.String("entity", entity))
			}

			// The query is left out: it carries the API key.
			logging.LogHTTPRequest(logger, r.Method, r.URL.Path, recorder.statusCode,
				float64(time.Since(start).Nanoseconds())/1e6, attrs...)
		})
	}
}
