// Package webui serves the HTML dashboard, its chart images and a debug view
// of the loaded table.
package webui

import (
	"embed"
	"html/template"

	"github.com/roadsafety-dashboard/roadsafety/internal/app"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

var (
	dashboardTemplate = template.Must(template.ParseFS(templateFS, "dashboard.html"))
	debugTemplate     = template.Must(template.ParseFS(templateFS, "debug_index.html"))
)

type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
