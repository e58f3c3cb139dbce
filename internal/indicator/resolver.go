package indicator

import (
	"log/slog"
	"sort"
	"strings"
)

// Resolver coerces raw values against a sentinel set. It holds no mutable
// state and may be shared between goroutines.
type Resolver struct {
	sentinels SentinelSet
	logger    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSentinels replaces the default sentinel set.
func WithSentinels(values ...string) Option {
	return func(r *Resolver) {
		r.sentinels = NewSentinelSet(values...)
	}
}

// WithLogger enables debug logging of malformed values.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{sentinels: NewSentinelSet(DefaultSentinels...)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Sentinels() SentinelSet {
	return r.sentinels
}

// Coerce converts one raw value to the requested kind.
func (r *Resolver) Coerce(raw string, kind Kind) Value {
	if r.sentinels.Contains(raw) {
		return Absent()
	}
	if kind == KindFloat {
		f, ok := ParseNumber(raw)
		if !ok {
			r.malformed(raw, kind)
			return Absent()
		}
		return FloatValue(f)
	}
	return StringValue(strings.TrimSpace(raw))
}

// LookupScalar returns the first record of indicatorType, coerced to kind.
// Later matches are ignored.
func (r *Resolver) LookupScalar(subset []Record, indicatorType string, kind Kind) Value {
	return r.LookupScalarMatching(subset, TypeEquals(indicatorType), kind)
}

func (r *Resolver) LookupScalarMatching(subset []Record, match TypeMatcher, kind Kind) Value {
	for _, rec := range subset {
		if match(rec.IndicatorType) {
			return r.Coerce(rec.Value, kind)
		}
	}
	return Absent()
}

// LookupMany returns every record of indicatorType in input order, each value
// coerced independently.
func (r *Resolver) LookupMany(subset []Record, indicatorType string, kind Kind) []Resolved {
	return r.LookupManyMatching(subset, TypeEquals(indicatorType), kind)
}

func (r *Resolver) LookupManyMatching(subset []Record, match TypeMatcher, kind Kind) []Resolved {
	resolved := make([]Resolved, 0)
	for _, rec := range subset {
		if !match(rec.IndicatorType) {
			continue
		}
		resolved = append(resolved, Resolved{
			Description: rec.Description,
			Value:       r.Coerce(rec.Value, kind),
		})
	}
	return resolved
}

// PercentageShareBreakdown turns "42%" style values into fractions sorted
// descending. Ties keep input order; sentinel and unparseable entries are
// dropped.
func (r *Resolver) PercentageShareBreakdown(subset []Record, indicatorType string) []Share {
	shares := make([]Share, 0)
	for _, rec := range subset {
		if rec.IndicatorType != indicatorType {
			continue
		}
		if r.sentinels.Contains(rec.Value) {
			continue
		}
		pct, ok := ParseNumber(rec.Value)
		if !ok {
			r.malformed(rec.Value, KindFloat)
			continue
		}
		shares = append(shares, Share{Label: rec.Description, Fraction: pct / 100})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Fraction > shares[j].Fraction
	})
	return shares
}

func (r *Resolver) malformed(raw string, kind Kind) {
	if r.logger == nil {
		return
	}
	r.logger.Debug("malformed indicator value",
		slog.String("value", raw),
		slog.String("kind", kind.String()),
		slog.String("component", "indicator_resolver"))
}
