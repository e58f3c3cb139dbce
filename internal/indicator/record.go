// Package indicator turns long-format indicator records into typed values.
//
// Every "this cell is missing or garbage" decision is made here: lookups never
// fail, they degrade to Absent or to an empty slice.
package indicator

import (
	"regexp"
	"strconv"
	"strings"
)

// Record is one row of the long-format table.
type Record struct {
	EntityKey     string `json:"entityKey"`
	IndicatorType string `json:"indicatorType"`
	Description   string `json:"description"`
	Value         string `json:"value"`
}

// DefaultSentinels are the raw strings treated as "no data".
var DefaultSentinels = []string{"-", "—", "?", "", "NaN", "No data", "Not restricted"}

// SentinelSet is an immutable set of raw values meaning absent.
type SentinelSet struct {
	values map[string]struct{}
}

// NewSentinelSet builds a set; members are compared after trimming whitespace.
func NewSentinelSet(values ...string) SentinelSet {
	set := SentinelSet{values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		set.values[strings.TrimSpace(v)] = struct{}{}
	}
	return set
}

func (s SentinelSet) Contains(raw string) bool {
	_, ok := s.values[strings.TrimSpace(raw)]
	return ok
}

func (s SentinelSet) Len() int {
	return len(s.values)
}

// Members returns the set contents in no particular order.
func (s SentinelSet) Members() []string {
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	return out
}

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses a decimal number after trimming whitespace and one
// trailing '%'. Anything outside the decimal grammar (NaN, Inf, hex) fails.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SelectEntity returns the records whose entity key equals key, in input order.
func SelectEntity(records []Record, key string) []Record {
	var subset []Record
	for _, r := range records {
		if r.EntityKey == key {
			subset = append(subset, r)
		}
	}
	return subset
}

// Entities returns the distinct entity keys in first-seen order.
func Entities(records []Record) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, r := range records {
		if seen[r.EntityKey] {
			continue
		}
		seen[r.EntityKey] = true
		keys = append(keys, r.EntityKey)
	}
	return keys
}
