package domain

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// TokenLength is the exact length of generated confirmation tokens and the
// upper bound accepted by ParseSubscriptionToken.
const TokenLength = 30

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var tokenRegexp = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// SubscriptionToken is a single-use opaque token granting the right to
// activate exactly one subscriber.
type SubscriptionToken struct {
	value string
}

// ParseSubscriptionToken validates raw: non-empty, at most 30 characters,
// alphanumeric only.
func ParseSubscriptionToken(raw string) (SubscriptionToken, error) {
	if raw == "" {
		return SubscriptionToken{}, NewValidationError("subscription token cannot be empty")
	}
	if len(raw) > TokenLength {
		return SubscriptionToken{}, NewValidationError(fmt.Sprintf("subscription token cannot exceed %d characters", TokenLength))
	}
	if !tokenRegexp.MatchString(raw) {
		return SubscriptionToken{}, NewValidationError("subscription token must contain only letters and digits")
	}
	return SubscriptionToken{value: raw}, nil
}

// GenerateSubscriptionToken returns a fresh random confirmation token.
// Bytes from crypto/rand are rejection-sampled so every alphabet character is
// equally likely. The result always satisfies ParseSubscriptionToken.
func GenerateSubscriptionToken() SubscriptionToken {
	// Largest multiple of len(tokenAlphabet) that fits in a byte.
	limit := byte(256 - 256%len(tokenAlphabet))
	out := make([]byte, 0, TokenLength)
	buf := make([]byte, TokenLength)
	for len(out) < TokenLength {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand is documented to never fail on supported platforms.
			panic(err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == TokenLength {
				break
			}
		}
	}
	return SubscriptionToken{value: string(out)}
}

func (t SubscriptionToken) String() string { return t.value }
