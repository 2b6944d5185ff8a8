package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsletter/internal/domain"
)

type subscriptionService struct {
	store        domain.SubscriberStore
	emailService domain.EmailService
	baseURL      string
}

// NewSubscriptionService creates a SubscriptionService. baseURL is the public
// address of this application, used to build confirmation links.
func NewSubscriptionService(store domain.SubscriberStore, emailService domain.EmailService, baseURL string) domain.SubscriptionService {
	return &subscriptionService{
		store:        store,
		emailService: emailService,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
	}
}

// Subscribe reconciles a subscribe request against the store and sends a
// confirmation email. It tries an insert first; when the email is already
// present it re-reads the existing row on a fresh connection and either
// short-circuits (already active) or re-arms the subscriber to pending.
// The status write and the token insert share one transaction; the email is
// sent only after that transaction committed.
func (s *subscriptionService) Subscribe(ctx context.Context, name, email string) error {
	parsedName, err := domain.ParseSubscriberName(name)
	if err != nil {
		return err
	}
	parsedEmail, err := domain.ParseSubscriberEmail(email)
	if err != nil {
		return err
	}
	sub := domain.NewSubscriber{Email: parsedEmail, Name: parsedName}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}
	subscriberID, insertErr := tx.Insert(ctx, sub.Email.String(), sub.Name.String())
	if insertErr != nil {
		if !errors.Is(insertErr, domain.ErrDuplicateEmail) {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert subscriber: %w", insertErr)
		}
		// The email is already subscribed. The failed transaction cannot
		// serve reads anymore, so the lookup runs on a fresh connection.
		existing, lookupErr := s.store.FindByEmail(ctx, sub.Email.String())
		if lookupErr != nil {
			// Covers the delete-between-conflict-and-lookup race: surface
			// the original insert failure rather than retrying forever.
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert subscriber (lookup after conflict: %v): %w", lookupErr, insertErr)
		}
		if existing.Status == domain.StatusActive {
			// Already confirmed: no new token, no email.
			_ = tx.Rollback()
			return nil
		}
		_ = tx.Rollback()
		tx, err = s.store.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to open transaction: %w", err)
		}
		if err := tx.SetStatus(ctx, existing.ID, domain.StatusPending); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to re-arm subscriber status: %w", err)
		}
		subscriberID = existing.ID
	}

	token := domain.GenerateSubscriptionToken()
	if err := tx.InsertToken(ctx, subscriberID, token.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to store confirmation token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit subscription: %w", err)
	}

	data := &domain.ConfirmationEmailData{
		Email:            sub.Email.String(),
		Name:             sub.Name.String(),
		ConfirmationLink: s.confirmationLink(token),
	}
	if err := s.emailService.SendConfirmation(ctx, data); err != nil {
		// Subscriber and token are committed; the caller can retry the send.
		return fmt.Errorf("%w: %v", domain.ErrConfirmationEmailNotSent, err)
	}
	return nil
}

// Confirm activates the subscriber that owns rawToken. Confirming an already
// active subscriber succeeds and changes nothing.
func (s *subscriptionService) Confirm(ctx context.Context, rawToken string) error {
	token, err := domain.ParseSubscriptionToken(rawToken)
	if err != nil {
		return err
	}
	subscriberID, err := s.store.FindIDByToken(ctx, token.String())
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up subscription token: %w", err)
	}
	if err := s.store.SetStatus(ctx, subscriberID, domain.StatusActive); err != nil {
		return fmt.Errorf("failed to activate subscriber: %w", err)
	}
	return nil
}

func (s *subscriptionService) confirmationLink(token domain.SubscriptionToken) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, token.String())
}
