package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SubscriberEmail is a validated, normalized email address. It is the key
// subscribe requests are reconciled against.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail trims and lowercases raw and validates it against the
// email address grammar.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	normalized := strings.TrimSpace(strings.ToLower(raw))
	if !emailRegexp.MatchString(normalized) {
		return SubscriberEmail{}, NewValidationError(fmt.Sprintf("%q is not a valid email address", raw))
	}
	return SubscriberEmail{value: normalized}, nil
}

func (e SubscriberEmail) String() string { return e.value }
