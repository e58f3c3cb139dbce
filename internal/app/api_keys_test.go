package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadsafety-dashboard/roadsafety/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestValidKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key", "other"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("other"))
	assert.True(t, app.IsInvalidAPIKey("unknown"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"TEST"},
		},
	}

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/entities.json?key=TEST", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/entities.json", nil)))
}

func TestShutdownWithoutDataset(t *testing.T) {
	app := &Application{}
	app.Shutdown()
}
