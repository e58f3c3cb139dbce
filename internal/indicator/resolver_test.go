package indicator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const deathDistribution = "Distribution of road traffic deaths by type of road user (%)"

func sampleRecords() []Record {
	return []Record{
		{EntityKey: "Kenya", IndicatorType: "Existence of national speed limits", Description: "National", Value: "Yes"},
		{EntityKey: "Norway", IndicatorType: "Existence of national speed limits", Description: "National", Value: "Yes"},
		{EntityKey: "Kenya", IndicatorType: "Seat-belt wearing rate (%)", Description: "Drivers", Value: "80.5"},
		{EntityKey: "Kenya", IndicatorType: "Seat-belt wearing rate (%)", Description: "Front seat occupants", Value: "-"},
		{EntityKey: "Kenya", IndicatorType: "Seat-belt wearing rate (%)", Description: "Rear seat occupants", Value: "12"},
		{EntityKey: "Kenya", IndicatorType: deathDistribution, Description: "Pedestrians", Value: "39%"},
		{EntityKey: "Kenya", IndicatorType: deathDistribution, Description: "Drivers/passengers of 4-wheeled vehicles", Value: "22.5%"},
		{EntityKey: "Kenya", IndicatorType: deathDistribution, Description: "Cyclists", Value: "5%"},
		{EntityKey: "Kenya", IndicatorType: deathDistribution, Description: "Riders of motorized 2- or 3-wheelers", Value: "22.5%"},
		{EntityKey: "Kenya", IndicatorType: deathDistribution, Description: "Other", Value: "abc%"},
		{EntityKey: "Kenya", IndicatorType: "National motorcycle helmet law", Description: "Applies to drivers", Value: "Yes"},
		{EntityKey: "Kenya", IndicatorType: "Helmet law applies to all road types", Description: "All roads", Value: "Not restricted"},
	}
}

func TestSelectEntity(t *testing.T) {
	records := sampleRecords()

	t.Run("keeps input order", func(t *testing.T) {
		subset := SelectEntity(records, "Kenya")
		require.Len(t, subset, 11)
		assert.Equal(t, "Existence of national speed limits", subset[0].IndicatorType)
		assert.Equal(t, "Drivers", subset[1].Description)
		assert.Equal(t, "All roads", subset[len(subset)-1].Description)
	})

	t.Run("unknown key yields empty subset", func(t *testing.T) {
		assert.Empty(t, SelectEntity(records, "Atlantis"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SelectEntity(nil, "Kenya"))
	})
}

func TestEntities(t *testing.T) {
	assert.Equal(t, []string{"Kenya", "Norway"}, Entities(sampleRecords()))
	assert.Empty(t, Entities(nil))
}

func TestLookupScalar(t *testing.T) {
	resolver := NewResolver()
	subset := SelectEntity(sampleRecords(), "Kenya")

	t.Run("string pass-through", func(t *testing.T) {
		v := resolver.LookupScalar(subset, "Existence of national speed limits", KindString)
		s, ok := v.Str()
		require.True(t, ok)
		assert.Equal(t, "Yes", s)
	})

	t.Run("first match wins", func(t *testing.T) {
		v := resolver.LookupScalar(subset, "Seat-belt wearing rate (%)", KindFloat)
		f, ok := v.Float()
		require.True(t, ok)
		assert.InDelta(t, 80.5, f, 1e-9)
	})

	t.Run("missing indicator type is absent", func(t *testing.T) {
		v := resolver.LookupScalar(subset, "Existence of a national child-restraint law", KindString)
		assert.True(t, v.IsAbsent())
		assert.Equal(t, "No data", v.Text("No data"))
	})

	t.Run("non-numeric value requested as float is absent", func(t *testing.T) {
		v := resolver.LookupScalar(subset, "Existence of national speed limits", KindFloat)
		assert.True(t, v.IsAbsent())
	})

	t.Run("percentage parses as float without scaling", func(t *testing.T) {
		v := resolver.LookupScalar(subset, deathDistribution, KindFloat)
		f, ok := v.Float()
		require.True(t, ok)
		assert.InDelta(t, 39.0, f, 1e-9)
	})
}

func TestLookupScalarSentinels(t *testing.T) {
	resolver := NewResolver()
	for _, sentinel := range append(DefaultSentinels, "  -  ", "\t") {
		for _, kind := range []Kind{KindString, KindFloat} {
			records := []Record{{EntityKey: "A", IndicatorType: "X", Description: "d", Value: sentinel}}
			v := resolver.LookupScalar(records, "X", kind)
			assert.True(t, v.IsAbsent(), "sentinel %q as %s", sentinel, kind)
		}
	}
}

func TestCustomSentinels(t *testing.T) {
	resolver := NewResolver(WithSentinels("n/a"))
	records := []Record{
		{EntityKey: "A", IndicatorType: "X", Description: "d1", Value: "n/a"},
		{EntityKey: "A", IndicatorType: "Y", Description: "d2", Value: "-"},
	}

	assert.True(t, resolver.LookupScalar(records, "X", KindString).IsAbsent())
	s, ok := resolver.LookupScalar(records, "Y", KindString).Str()
	require.True(t, ok)
	assert.Equal(t, "-", s)
	assert.Equal(t, 1, resolver.Sentinels().Len())
}

func TestLookupMany(t *testing.T) {
	resolver := NewResolver()
	subset := SelectEntity(sampleRecords(), "Kenya")

	t.Run("returns all facets in order", func(t *testing.T) {
		got := resolver.LookupMany(subset, "Seat-belt wearing rate (%)", KindFloat)
		require.Len(t, got, 3)
		assert.Equal(t, "Drivers", got[0].Description)
		assert.Equal(t, "Front seat occupants", got[1].Description)
		assert.Equal(t, "Rear seat occupants", got[2].Description)

		f, ok := got[0].Value.Float()
		require.True(t, ok)
		assert.InDelta(t, 80.5, f, 1e-9)
		assert.True(t, got[1].Value.IsAbsent())
		f, ok = got[2].Value.Float()
		require.True(t, ok)
		assert.InDelta(t, 12.0, f, 1e-9)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := resolver.LookupMany(subset, "Maximum speed limits", KindString)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("matching by substring ignores case", func(t *testing.T) {
		got := resolver.LookupManyMatching(subset, TypeContains("HELMET LAW"), KindString)
		require.Len(t, got, 2)
		assert.Equal(t, "Applies to drivers", got[0].Description)
		assert.True(t, got[1].Value.IsAbsent())
	})
}

func TestPercentageShareBreakdown(t *testing.T) {
	resolver := NewResolver()
	subset := SelectEntity(sampleRecords(), "Kenya")

	t.Run("sorted descending with stable ties", func(t *testing.T) {
		shares := resolver.PercentageShareBreakdown(subset, deathDistribution)
		require.Len(t, shares, 4)
		assert.Equal(t, "Pedestrians", shares[0].Label)
		assert.Equal(t, "Drivers/passengers of 4-wheeled vehicles", shares[1].Label)
		assert.Equal(t, "Riders of motorized 2- or 3-wheelers", shares[2].Label)
		assert.Equal(t, "Cyclists", shares[3].Label)
		assert.InDelta(t, 0.39, shares[0].Fraction, 1e-9)

		sum := 0.0
		for i, s := range shares {
			sum += s.Fraction
			if i > 0 {
				assert.GreaterOrEqual(t, shares[i-1].Fraction, s.Fraction)
			}
		}
		assert.LessOrEqual(t, sum, 1.0+1e-9)
	})

	t.Run("sentinel and malformed entries are dropped", func(t *testing.T) {
		records := []Record{
			{EntityKey: "A", IndicatorType: "X", Description: "d1", Value: "-"},
			{EntityKey: "A", IndicatorType: "X", Description: "d2", Value: "10%"},
		}
		shares := resolver.PercentageShareBreakdown(SelectEntity(records, "A"), "X")
		require.Len(t, shares, 1)
		assert.Equal(t, "d2", shares[0].Label)
		assert.InDelta(t, 0.10, shares[0].Fraction, 1e-9)
	})

	t.Run("round trip of a well formed percentage", func(t *testing.T) {
		records := []Record{{EntityKey: "A", IndicatorType: "X", Description: "d", Value: "37.5%"}}
		shares := resolver.PercentageShareBreakdown(records, "X")
		require.Len(t, shares, 1)
		assert.InDelta(t, 0.375, shares[0].Fraction, 1e-12)
	})

	t.Run("empty subset", func(t *testing.T) {
		shares := resolver.PercentageShareBreakdown(nil, deathDistribution)
		assert.NotNil(t, shares)
		assert.Empty(t, shares)
	})
}

func TestEmptyEntityDegradesEverywhere(t *testing.T) {
	resolver := NewResolver()
	subset := SelectEntity(sampleRecords(), "Atlantis")

	assert.True(t, resolver.LookupScalar(subset, "Existence of national speed limits", KindString).IsAbsent())
	assert.True(t, resolver.LookupScalarMatching(subset, TypeContains("death rate"), KindFloat).IsAbsent())
	assert.Empty(t, resolver.LookupMany(subset, "Seat-belt wearing rate (%)", KindFloat))
	assert.Empty(t, resolver.PercentageShareBreakdown(subset, deathDistribution))
}

func TestLookupsAreIdempotent(t *testing.T) {
	resolver := NewResolver()
	subset := SelectEntity(sampleRecords(), "Kenya")

	assert.Equal(t,
		resolver.LookupMany(subset, "Seat-belt wearing rate (%)", KindFloat),
		resolver.LookupMany(subset, "Seat-belt wearing rate (%)", KindFloat))
	assert.Equal(t,
		resolver.PercentageShareBreakdown(subset, deathDistribution),
		resolver.PercentageShareBreakdown(subset, deathDistribution))
	assert.Equal(t,
		resolver.LookupScalar(subset, "Existence of national speed limits", KindString),
		resolver.LookupScalar(subset, "Existence of national speed limits", KindString))
}

func TestMalformedValuesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	resolver := NewResolver(WithLogger(logger))

	records := []Record{{EntityKey: "A", IndicatorType: "X", Description: "d", Value: "abc%"}}
	shares := resolver.PercentageShareBreakdown(records, "X")

	assert.Empty(t, shares)
	assert.Contains(t, buf.String(), `"msg":"malformed indicator value"`)
	assert.Contains(t, buf.String(), `"value":"abc%"`)
}
