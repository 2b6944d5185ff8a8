package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "valid address", raw: "ursula@x.com", want: "ursula@x.com"},
		{name: "normalizes case and whitespace", raw: "  Ursula@X.COM ", want: "ursula@x.com"},
		{name: "plus addressing", raw: "ursula+books@example.org", want: "ursula+books@example.org"},
		{name: "empty string", raw: "", wantErr: true},
		{name: "missing at symbol", raw: "ursuladomain.com", wantErr: true},
		{name: "missing subject", raw: "@domain.com", wantErr: true},
		{name: "missing domain", raw: "ursula@", wantErr: true},
		{name: "missing tld", raw: "ursula@domain", wantErr: true},
		{name: "embedded space", raw: "ursula le guin@x.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseSubscriberEmail(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed.String())
		})
	}
}
