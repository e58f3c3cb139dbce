package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadsafety-dashboard/roadsafety/internal/dataset"
	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
)

func TestValidateEntity(t *testing.T) {
	longKey := strings.Repeat("Republic of ", 12)
	oddKey := "Côte d'Ivoire; <1990 borders>"

	app := &Application{
		Dataset: dataset.NewManager("memory", []indicator.Record{
			{EntityKey: longKey, IndicatorType: "X", Description: "d", Value: "1"},
			{EntityKey: oddKey, IndicatorType: "X", Description: "d", Value: "1"},
		}),
	}

	t.Run("keys in the table always pass", func(t *testing.T) {
		assert.NoError(t, app.ValidateEntity(longKey))
		assert.NoError(t, app.ValidateEntity(oddKey))
	})

	t.Run("unknown keys are checked by pattern", func(t *testing.T) {
		assert.NoError(t, app.ValidateEntity("Atlantis"))
		assert.Error(t, app.ValidateEntity(longKey+"x"))
		assert.Error(t, app.ValidateEntity("<script>"))
		assert.Error(t, app.ValidateEntity(""))
	})

	t.Run("without a dataset", func(t *testing.T) {
		empty := &Application{}
		assert.NoError(t, empty.ValidateEntity("Kenya"))
		assert.Error(t, empty.ValidateEntity(oddKey))
	})
}
