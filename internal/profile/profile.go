// Package profile assembles the per-country road safety profile shown by
// the dashboard and the API.
package profile

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
)

// Profile is the resolved bundle for one entity.
type Profile struct {
	Entity            string               `json:"entity"`
	Empty             bool                 `json:"empty"`
	Snapshot          []indicator.Resolved `json:"snapshot"`
	SeatBelt          []indicator.Resolved `json:"seatBelt"`
	Helmet            []indicator.Resolved `json:"helmet"`
	DeathDistribution []indicator.Share    `json:"deathDistribution"`
	SpeedLimits       []indicator.Resolved `json:"speedLimits"`
	BACLimits         []indicator.Resolved `json:"bacLimits"`
	EstimatedDeaths   indicator.Value      `json:"estimatedDeaths"`
	DeathRate         indicator.Value      `json:"deathRate"`
}

// Source provides the immutable record table.
type Source interface {
	Records() []indicator.Record
}

// Builder resolves profiles and memoises them per entity key. The table is
// immutable, so a cached profile is always equal to a fresh build.
type Builder struct {
	source   Source
	resolver *indicator.Resolver
	cache    *cache.Cache
	logger   *slog.Logger
}

// NewBuilder creates a Builder. A ttl of zero caches for the life of the
// process; a negative ttl disables caching. No janitor goroutine is started:
// expired profiles are skipped by Get and replaced on the next build, and
// there is at most one entry per entity.
func NewBuilder(source Source, resolver *indicator.Resolver, ttl time.Duration, logger *slog.Logger) *Builder {
	b := &Builder{
		source:   source,
		resolver: resolver,
		logger:   logger,
	}
	switch {
	case ttl == 0:
		b.cache = cache.New(cache.NoExpiration, 0)
	case ttl > 0:
		b.cache = cache.New(ttl, 0)
	}
	return b
}

func (b *Builder) Resolver() *indicator.Resolver {
	return b.resolver
}

// Build returns the profile for entity; unknown entities give an empty profile.
func (b *Builder) Build(entity string) *Profile {
	if b.cache != nil {
		if cached, found := b.cache.Get(entity); found {
			return cached.(*Profile)
		}
	}

	p := Resolve(b.resolver, indicator.SelectEntity(b.source.Records(), entity), entity)

	if b.cache != nil {
		b.cache.SetDefault(entity, p)
	}
	if b.logger != nil {
		b.logger.Debug("profile resolved",
			slog.String("entity", entity),
			slog.Bool("empty", p.Empty),
			slog.String("component", "profile_builder"))
	}
	return p
}

// Flush drops every cached profile.
func (b *Builder) Flush() {
	if b.cache != nil {
		b.cache.Flush()
	}
}

// CachedCount reports how many profiles are memoised.
func (b *Builder) CachedCount() int {
	if b.cache == nil {
		return 0
	}
	return b.cache.ItemCount()
}

// Resolve builds a profile from an already selected subset.
func Resolve(r *indicator.Resolver, subset []indicator.Record, entity string) *Profile {
	p := &Profile{
		Entity: entity,
		Empty:  len(subset) == 0,
	}

	p.Snapshot = make([]indicator.Resolved, 0, len(SnapshotIndicators))
	for _, t := range SnapshotIndicators {
		p.Snapshot = append(p.Snapshot, indicator.Resolved{
			Description: t,
			Value:       r.LookupScalar(subset, t, indicator.KindString),
		})
	}

	p.SeatBelt = r.LookupMany(subset, SeatBeltWearingRate, indicator.KindFloat)
	p.Helmet = r.LookupManyMatching(subset, indicator.TypeContains(helmetLawFragment), indicator.KindString)
	p.DeathDistribution = r.PercentageShareBreakdown(subset, DeathDistribution)
	p.SpeedLimits = r.LookupMany(subset, MaximumSpeedLimits, indicator.KindString)
	p.BACLimits = r.LookupMany(subset, BACLimits, indicator.KindString)
	p.EstimatedDeaths = r.LookupScalarMatching(subset, indicator.TypeContains(estimatedDeathsFragment), indicator.KindString)
	p.DeathRate = r.LookupScalarMatching(subset, indicator.TypeContains(deathRateFragment), indicator.KindString)

	return p
}

// Display formats a value for a text renderer.
func Display(v indicator.Value, placeholder string) string {
	return v.Text(placeholder)
}

// DisplayPercent formats seat-belt style rates with one decimal.
func DisplayPercent(v indicator.Value) string {
	if f, ok := v.Float(); ok {
		return fmt.Sprintf("%.1f%%", f)
	}
	return NoData
}

// DisplaySpeed appends the km/h unit to present speed limits.
func DisplaySpeed(v indicator.Value) string {
	if v.IsAbsent() {
		return NoData
	}
	return v.Text(NoData) + speedLimitSuffix
}

// DisplayHelmet uses the helmet-specific placeholder.
func DisplayHelmet(v indicator.Value) string {
	return v.Text(HelmetNoData)
}
