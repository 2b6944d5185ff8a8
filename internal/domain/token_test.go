package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriptionToken(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "30 alphanumeric characters", raw: strings.Repeat("aB9", 10)},
		{name: "shorter token", raw: "abc123"},
		{name: "empty string", raw: "", wantErr: true},
		{name: "31 characters", raw: strings.Repeat("q", 31), wantErr: true},
		{name: "hyphen", raw: strings.Repeat("a", 29) + "-", wantErr: true},
		{name: "space", raw: "abc 123", wantErr: true},
		{name: "non-ascii", raw: "abcé123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseSubscriptionToken(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, parsed.String())
		})
	}
}

func TestGenerateSubscriptionToken_IsValid(t *testing.T) {
	token := GenerateSubscriptionToken()

	require.Len(t, token.String(), TokenLength)
	_, err := ParseSubscriptionToken(token.String())
	require.NoError(t, err)
}

func TestGenerateSubscriptionToken_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token := GenerateSubscriptionToken().String()
		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated: %s", token)
		seen[token] = struct{}{}
	}
}
