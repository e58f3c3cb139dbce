package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   content,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")
	entity := r.URL.Query().Get("entity")

	var data interface{}
	var title string

	switch dataType {
	case "entities":
		data = webUI.Dataset.Entities()
		title = "Dataset - Entities"
	case "records":
		if entity != "" {
			data = indicator.SelectEntity(webUI.Dataset.Records(), entity)
			title = "Dataset - Records for " + entity
		} else {
			data = webUI.Dataset.Records()
			title = "Dataset - Records"
		}
	case "profile":
		if entity == "" {
			entity = webUI.Dataset.DefaultEntity()
		}
		data = webUI.Profiles.Build(entity)
		title = "Profile - " + entity
	case "statistics":
		data = webUI.Dataset.Statistics()
		title = "Dataset - Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: entities, records, profile, statistics.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
