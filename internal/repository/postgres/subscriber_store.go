package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"newsletter/internal/domain"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type subscriberStore struct {
	DB *sql.DB
}

// NewSubscriberStore returns a domain.SubscriberStore implemented with Postgres.
func NewSubscriberStore(db *sql.DB) domain.SubscriberStore {
	return &subscriberStore{DB: db}
}

func (s *subscriberStore) Begin(ctx context.Context) (domain.SubscriberTx, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin subscription transaction: %w", err)
	}
	return &subscriberTx{tx: tx}, nil
}

func (s *subscriberStore) FindByEmail(ctx context.Context, email string) (*domain.SubscriberRef, error) {
	query := `
		SELECT id, status
		FROM subscriptions
		WHERE email = $1
	`
	var (
		id     string
		status string
	)
	err := s.DB.QueryRowContext(ctx, query, email).Scan(&id, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, err
	}
	parsed, err := domain.ParseSubscriberStatus(status)
	if err != nil {
		// Unrecognized stored status reads as disabled so the read stays total.
		parsed = domain.StatusDisabled
	}
	return &domain.SubscriberRef{ID: id, Status: parsed}, nil
}

func (s *subscriberStore) FindIDByToken(ctx context.Context, token string) (string, error) {
	query := `
		SELECT subscriber_id
		FROM subscription_tokens
		WHERE subscription_token = $1
	`
	var id string
	err := s.DB.QueryRowContext(ctx, query, token).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrTokenNotFound
		}
		return "", err
	}
	return id, nil
}

func (s *subscriberStore) SetStatus(ctx context.Context, id string, status domain.SubscriberStatus) error {
	_, err := s.DB.ExecContext(ctx, setStatusQuery, status.String(), id)
	return err
}

const setStatusQuery = `
	UPDATE subscriptions SET status = $1
	WHERE id = $2
`

type subscriberTx struct {
	tx *sql.Tx
}

func (t *subscriberTx) Insert(ctx context.Context, email, name string) (string, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := t.tx.ExecContext(ctx, query, id, email, name, time.Now().UTC(), domain.StatusPending.String())
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicateEmail
		}
		return "", err
	}
	return id, nil
}

func (t *subscriberTx) SetStatus(ctx context.Context, id string, status domain.SubscriberStatus) error {
	_, err := t.tx.ExecContext(ctx, setStatusQuery, status.String(), id)
	return err
}

func (t *subscriberTx) InsertToken(ctx context.Context, subscriberID, token string) error {
	query := `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)
	`
	_, err := t.tx.ExecContext(ctx, query, token, subscriberID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (t *subscriberTx) Commit() error { return t.tx.Commit() }

func (t *subscriberTx) Rollback() error { return t.tx.Rollback() }

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}
