package webui

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
	"github.com/roadsafety-dashboard/roadsafety/internal/profile"
)

type metric struct {
	Label string
	Value string
}

type dashboardPage struct {
	Entities        []string
	Selected        string
	Empty           bool
	Snapshot        []metric
	SeatBelt        []metric
	Helmet          []metric
	Shares          []metric
	ChartURL        string
	SpeedLimits     []metric
	BACLimits       []metric
	EstimatedDeaths string
	DeathRate       string
}

func newDashboardPage(entities []string, p *profile.Profile) dashboardPage {
	page := dashboardPage{
		Entities:        entities,
		Selected:        p.Entity,
		Empty:           p.Empty,
		Snapshot:        metrics(p.Snapshot, func(v indicator.Value) string { return profile.Display(v, profile.NoData) }),
		SeatBelt:        metrics(p.SeatBelt, profile.DisplayPercent),
		Helmet:          metrics(p.Helmet, profile.DisplayHelmet),
		SpeedLimits:     metrics(p.SpeedLimits, profile.DisplaySpeed),
		BACLimits:       metrics(p.BACLimits, func(v indicator.Value) string { return profile.Display(v, profile.NoData) }),
		EstimatedDeaths: profile.Display(p.EstimatedDeaths, profile.NoData),
		DeathRate:       profile.Display(p.DeathRate, profile.NoData),
	}

	for _, s := range p.DeathDistribution {
		page.Shares = append(page.Shares, metric{
			Label: s.Label,
			Value: fmt.Sprintf("%.1f%%", s.Fraction*100),
		})
	}
	if len(page.Shares) > 0 {
		page.ChartURL = deathDistributionPath + "?" + url.Values{"entity": {p.Entity}}.Encode()
	}
	return page
}

func metrics(resolved []indicator.Resolved, display func(indicator.Value) string) []metric {
	out := make([]metric, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, metric{Label: r.Description, Value: display(r.Value)})
	}
	return out
}

// dashboardHandler renders the profile of ?entity=, or of the first entity
// in the table when none is given.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	entity := r.URL.Query().Get("entity")
	if entity == "" {
		entity = webUI.Dataset.DefaultEntity()
	}
	if entity != "" {
		if err := webUI.ValidateEntity(entity); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	p := webUI.Profiles.Build(entity)
	page := newDashboardPage(webUI.Dataset.Entities(), p)

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard", err,
			slog.String("entity", entity),
			slog.String("component", "webui"))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
