package domain

import (
	"context"
	"errors"
)

// Sentinel errors for subscription storage.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrDuplicateEmail     = errors.New("email already subscribed")
	ErrDuplicateToken     = errors.New("subscription token already exists")
	ErrTokenNotFound      = errors.New("subscription token not found")
)

// ErrConfirmationEmailNotSent marks a subscribe call whose subscriber and
// token rows were committed but whose confirmation email was not delivered.
// The stored token stays valid, so the send may be retried.
var ErrConfirmationEmailNotSent = errors.New("confirmation email not sent")

// ValidationError reports malformed client input. No side effects were
// performed when one is returned.
type ValidationError struct {
	msg string
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// NewSubscriber holds the validated fields of a subscribe request.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// SubscriberRef is the (id, status) projection used during reconciliation.
type SubscriberRef struct {
	ID     string
	Status SubscriberStatus
}

// SubscriberTx groups the writes of one reconciliation unit into a single
// transaction. All writes issued through a SubscriberTx become visible
// atomically on Commit.
type SubscriberTx interface {
	// Insert creates a subscriber in StatusPending and returns its id.
	// Returns ErrDuplicateEmail when the store's email uniqueness constraint
	// is violated.
	Insert(ctx context.Context, email, name string) (id string, err error)
	SetStatus(ctx context.Context, id string, status SubscriberStatus) error
	// InsertToken records a token for a subscriber. The mapping is immutable
	// once written. Returns ErrDuplicateToken if the token already exists.
	InsertToken(ctx context.Context, subscriberID, token string) error
	Commit() error
	Rollback() error
}

// SubscriberStore is the narrow persistence contract the subscription core
// depends on. Reads run on their own connection, outside any transaction
// opened with Begin; that matters after a failed insert, when the
// transaction can no longer serve queries.
type SubscriberStore interface {
	Begin(ctx context.Context) (SubscriberTx, error)
	// FindByEmail returns ErrSubscriberNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*SubscriberRef, error)
	// FindIDByToken returns ErrTokenNotFound when no row matches.
	FindIDByToken(ctx context.Context, token string) (string, error)
	SetStatus(ctx context.Context, id string, status SubscriberStatus) error
}

// SubscriptionService defines the subscribe and confirm workflows.
type SubscriptionService interface {
	Subscribe(ctx context.Context, name, email string) error
	Confirm(ctx context.Context, rawToken string) error
}
