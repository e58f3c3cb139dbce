package indicator

import (
	"strings"

	"golang.org/x/text/cases"
)

// TypeMatcher reports whether an indicator type belongs to a lookup.
type TypeMatcher func(indicatorType string) bool

// TypeEquals matches one indicator type exactly.
func TypeEquals(indicatorType string) TypeMatcher {
	return func(t string) bool {
		return t == indicatorType
	}
}

// TypeContains matches every indicator type containing substr, ignoring case.
func TypeContains(substr string) TypeMatcher {
	needle := cases.Fold().String(substr)
	return func(t string) bool {
		// A Caser carries state, so each call gets its own.
		return strings.Contains(cases.Fold().String(t), needle)
	}
}
