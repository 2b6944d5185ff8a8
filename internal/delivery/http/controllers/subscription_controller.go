package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"newsletter/internal/delivery/http/helpers"
	"newsletter/internal/domain"
)

// SubscriptionController handles newsletter subscription endpoints.
type SubscriptionController struct {
	Logger  *slog.Logger
	Service domain.SubscriptionService
}

// NewSubscriptionController creates a SubscriptionController with the given logger and service.
func NewSubscriptionController(logger *slog.Logger, svc domain.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Accepts a form-encoded name and email, records the subscriber as pending confirmation, and emails a confirmation link. Re-subscribing while pending issues a fresh token; re-subscribing an already active subscriber is a no-op success.
// @Tags subscriptions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Subscriber display name"
// @Param email formData string true "Subscriber email address"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: email_not_sent or internal_error"
// @Router /subscriptions [post]
func (c *SubscriptionController) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "malformed form body")
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")

	if err := c.Service.Subscribe(r.Context(), name, email); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, validationErr.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if errors.Is(err, domain.ErrConfirmationEmailNotSent) {
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeEmailNotSent, "subscription recorded but the confirmation email could not be sent")
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to process subscription")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Confirm godoc
// @Summary Confirm a pending subscription
// @Description Redeems the confirmation token from the emailed link and activates the subscriber. Repeat confirmations with the same token succeed.
// @Tags subscriptions
// @Produce json
// @Param subscription_token query string true "Confirmation token"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriptions/confirm [get]
func (c *SubscriptionController) Confirm(w http.ResponseWriter, r *http.Request) {
	rawToken := r.URL.Query().Get("subscription_token")

	if err := c.Service.Confirm(r.Context(), rawToken); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, validationErr.Error())
			return
		}
		if errors.Is(err, domain.ErrTokenNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unknown subscription token")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to confirm subscription")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
