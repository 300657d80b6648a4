package domain

import (
	"cmp"
	"slices"
	"strings"
)

// FilterByRegion returns the targets whose geoState whitelist contains
// region. An empty region skips the filter and passes every target
// through. The result preserves input order and never mutates targets.
func FilterByRegion(targets []Target, region string) []Target {
	if region == "" {
		return targets
	}
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Accept.GeoState.Contains(region) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByHour returns the targets whose hour whitelist contains the
// given hour code. An empty hour skips the filter. Applied after
// FilterByRegion it narrows the region-filtered set, not the full set.
func FilterByHour(targets []Target, hour string) []Target {
	if hour == "" {
		return targets
	}
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Accept.Hour.Contains(hour) {
			out = append(out, t)
		}
	}
	return out
}

// RankByValue returns a new slice ordered by bid value descending.
// Equal values are broken by target id ascending, so the ranking does
// not depend on store scan order.
func RankByValue(targets []Target) []Target {
	ranked := slices.Clone(targets)
	slices.SortStableFunc(ranked, func(a, b Target) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return ranked
}
