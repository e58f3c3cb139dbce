package models

import "github.com/roadsafety-dashboard/roadsafety/internal/indicator"

// EntityModel is one selectable entity in the entities list
type EntityModel struct {
	ID          string `json:"id"`
	RecordCount int    `json:"recordCount"`
}

// ScalarIndicator is the entry for a single-value lookup
type ScalarIndicator struct {
	Entity        string          `json:"entity"`
	IndicatorType string          `json:"indicatorType"`
	Kind          string          `json:"kind"`
	Value         indicator.Value `json:"value"`
	Display       string          `json:"display"`
}

// IndicatorList is the entry for a multi-facet lookup
type IndicatorList struct {
	Entity        string               `json:"entity"`
	IndicatorType string               `json:"indicatorType"`
	Kind          string               `json:"kind"`
	Values        []indicator.Resolved `json:"values"`
}

// ShareBreakdown is the entry for a percentage breakdown
type ShareBreakdown struct {
	Entity        string            `json:"entity"`
	IndicatorType string            `json:"indicatorType"`
	Shares        []indicator.Share `json:"shares"`
	Total         float64           `json:"total"`
}

// NewShareBreakdown sums the fractions into Total
func NewShareBreakdown(entity, indicatorType string, shares []indicator.Share) ShareBreakdown {
	total := 0.0
	for _, s := range shares {
		total += s.Fraction
	}
	return ShareBreakdown{
		Entity:        entity,
		IndicatorType: indicatorType,
		Shares:        shares,
		Total:         total,
	}
}
