package importer

import (
	"strconv"
	"strings"
)

// SplitList splits a comma separated property value into trimmed tokens.
// Empty tokens are dropped; order is kept.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseBool follows the linter's boolean semantics: true iff the value is
// "true" ignoring case. Anything else, including "1" and "yes", is false.
func ParseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// ParseInt parses a decimal integer property.
func ParseInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseEnum matches value case-insensitively against the keys of choices.
func ParseEnum[T any](value string, choices map[string]T, defaultVal T) (T, bool) {
	v, ok := choices[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return defaultVal, false
	}
	return v, true
}

// TokenSet collects the tokens of one or more list values.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from list values.
func NewTokenSet(values ...string) TokenSet {
	s := make(TokenSet)
	s.Add(values...)
	return s
}

// Add splits each value and adds its tokens.
func (s TokenSet) Add(values ...string) {
	for _, v := range values {
		for _, tok := range SplitList(v) {
			s[tok] = struct{}{}
		}
	}
}

// Has reports whether tok is present.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}
