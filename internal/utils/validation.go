package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Country names: letters in any script, digits, spaces and the punctuation
	// seen in official names, e.g. "Bolivia (Plurinational State of)".
	validEntityPattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N} '’(),.&/-]+$`)

	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const (
	maxEntityKeyLength     = 100
	maxIndicatorTypeLength = 200
)

// ValidateEntityKey validates that an entity key is safe and within reasonable limits
func ValidateEntityKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("id cannot be empty")
	}

	if len(key) > maxEntityKeyLength {
		return errors.New("id too long (max 100 characters)")
	}

	if !validEntityPattern.MatchString(key) || dangerousPattern.MatchString(key) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateIndicatorType validates an indicator type query parameter
func ValidateIndicatorType(indicatorType string) error {
	if strings.TrimSpace(indicatorType) == "" {
		return errors.New("type cannot be empty")
	}

	if len(indicatorType) > maxIndicatorTypeLength {
		return errors.New("type too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(indicatorType) {
		return errors.New("type contains invalid characters")
	}

	return nil
}

// ValidateQuery validates free-text query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > maxIndicatorTypeLength {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and trims whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeQuery validates and sanitizes a search query
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}
