package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/internal/delivery/http/helpers"
	"newsletter/internal/domain"
)

// fakeSubscriptionService implements domain.SubscriptionService for handler tests.
type fakeSubscriptionService struct {
	subscribeErr  error
	confirmErr    error
	lastName      string
	lastEmail     string
	lastToken     string
	subscribeHits int
	confirmHits   int
}

func (f *fakeSubscriptionService) Subscribe(ctx context.Context, name, email string) error {
	f.subscribeHits++
	f.lastName = name
	f.lastEmail = email
	return f.subscribeErr
}

func (f *fakeSubscriptionService) Confirm(ctx context.Context, rawToken string) error {
	f.confirmHits++
	f.lastToken = rawToken
	return f.confirmErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestSubscriptionController_Subscribe(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		wantStatus   int
		wantErrCode  string
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
		},
		{
			name:        "validation failure",
			serviceErr:  domain.NewValidationError("subscriber name cannot be empty"),
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "email not sent",
			serviceErr:  domain.ErrConfirmationEmailNotSent,
			wantStatus:  http.StatusInternalServerError,
			wantErrCode: helpers.ErrCodeEmailNotSent,
		},
		{
			name:        "store failure",
			serviceErr:  assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantErrCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSubscriptionService{subscribeErr: tt.serviceErr}
			controller := NewSubscriptionController(testLogger(), svc)

			form := url.Values{}
			form.Set("name", "le guin")
			form.Set("email", "ursula@x.com")
			req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()

			controller.Subscribe(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "le guin", svc.lastName)
			assert.Equal(t, "ursula@x.com", svc.lastEmail)
			resp := decodeEnvelope(t, rr)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantErrCode, resp.Error.Code)
				return
			}
			assert.Nil(t, resp.Error)
		})
	}
}

func TestSubscriptionController_Subscribe_MissingFieldsReachService(t *testing.T) {
	// Empty form fields are a domain concern; the controller forwards them
	// and the service answers with a validation error.
	svc := &fakeSubscriptionService{subscribeErr: domain.NewValidationError("subscriber name cannot be empty")}
	controller := NewSubscriptionController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	controller.Subscribe(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 1, svc.subscribeHits)
}

func TestSubscriptionController_Confirm(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		serviceErr  error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			token:      strings.Repeat("a", 30),
			wantStatus: http.StatusOK,
		},
		{
			name:        "malformed token",
			token:       "bad token!",
			serviceErr:  domain.NewValidationError("subscription token must contain only letters and digits"),
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "unknown token",
			token:       strings.Repeat("b", 30),
			serviceErr:  domain.ErrTokenNotFound,
			wantStatus:  http.StatusUnauthorized,
			wantErrCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:        "store failure",
			token:       strings.Repeat("c", 30),
			serviceErr:  assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantErrCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSubscriptionService{confirmErr: tt.serviceErr}
			controller := NewSubscriptionController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/confirm?subscription_token="+url.QueryEscape(tt.token), nil)
			rr := httptest.NewRecorder()

			controller.Confirm(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.token, svc.lastToken)
			resp := decodeEnvelope(t, rr)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantErrCode, resp.Error.Code)
				return
			}
			assert.Nil(t, resp.Error)
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	controller := NewHealthController()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	controller.Check(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Nil(t, resp.Error)
}
