// Package chart draws share breakdowns as pie charts.
package chart

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
)

// ErrNoShares is returned when no share has a positive fraction.
var ErrNoShares = errors.New("no drawable shares")

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" (default) and "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

const (
	defaultWidth  = 640
	defaultHeight = 640
)

// RenderShares draws shares as a pie. Non-positive fractions are skipped.
// The SVG renderer writes text verbatim, so labels are escaped for it.
func RenderShares(w io.Writer, title string, shares []indicator.Share, format Format) error {
	text := func(s string) string { return s }
	if format == FormatSVG {
		text = html.EscapeString
	}

	values := make([]gochart.Value, 0, len(shares))
	for _, s := range shares {
		if s.Fraction <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: text(fmt.Sprintf("%s (%.1f%%)", s.Label, s.Fraction*100)),
			Value: s.Fraction,
		})
	}
	if len(values) == 0 {
		return ErrNoShares
	}

	pie := gochart.PieChart{
		Title:  text(title),
		Width:  defaultWidth,
		Height: defaultHeight,
		Values: values,
	}

	renderer := gochart.PNG
	if format == FormatSVG {
		renderer = gochart.SVG
	}

	if err := pie.Render(renderer, w); err != nil {
		return fmt.Errorf("error rendering pie chart: %w", err)
	}
	return nil
}
