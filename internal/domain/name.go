package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxNameLength = 250

var forbiddenNameRunes = map[rune]struct{}{
	'/': {}, '(': {}, ')': {}, '"': {}, '<': {}, '>': {}, '\\': {}, '{': {}, '}': {},
}

// SubscriberName is a validated subscriber display name.
type SubscriberName struct {
	value string
}

// ParseSubscriberName trims raw and validates it: non-empty, at most 250
// characters, no control characters, and none of / ( ) " < > \ { }.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SubscriberName{}, NewValidationError("subscriber name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return SubscriberName{}, NewValidationError(fmt.Sprintf("subscriber name cannot exceed %d characters", maxNameLength))
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return SubscriberName{}, NewValidationError("subscriber name contains a control character")
		}
		if _, forbidden := forbiddenNameRunes[r]; forbidden {
			return SubscriberName{}, NewValidationError(fmt.Sprintf("subscriber name contains forbidden character %q", r))
		}
	}
	return SubscriberName{value: trimmed}, nil
}

func (n SubscriberName) String() string { return n.value }
