package app

import (
	"log/slog"

	"github.com/roadsafety-dashboard/roadsafety/internal/appconf"
	"github.com/roadsafety-dashboard/roadsafety/internal/dataset"
	"github.com/roadsafety-dashboard/roadsafety/internal/profile"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config        appconf.Config
	DatasetConfig dataset.Config
	Logger        *slog.Logger
	Dataset       *dataset.Manager
	Profiles      *profile.Builder
}

// Shutdown releases resources held by the dataset.
func (app *Application) Shutdown() {
	if app.Dataset != nil {
		app.Dataset.Shutdown()
	}
}
