package webui

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/roadsafety-dashboard/roadsafety/internal/chart"
	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
)

const (
	deathDistributionPath  = "/chart/death-distribution"
	deathDistributionTitle = "Deaths by Road User Type"
)

// deathDistributionChartHandler draws the pie for ?entity=. The key travels
// in the query because entity names may contain '/'.
func (webUI *WebUI) deathDistributionChartHandler(w http.ResponseWriter, r *http.Request) {
	entity := r.URL.Query().Get("entity")
	if err := webUI.ValidateEntity(entity); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format, err := chart.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !webUI.Dataset.HasEntity(entity) {
		http.NotFound(w, r)
		return
	}

	p := webUI.Profiles.Build(entity)

	var buf bytes.Buffer
	err = chart.RenderShares(&buf, deathDistributionTitle, p.DeathDistribution, format)
	if errors.Is(err, chart.ErrNoShares) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render chart", err,
			slog.String("entity", entity),
			slog.String("component", "webui"))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = buf.WriteTo(w)
}
