package repository

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore keeps one opaque value per user id. Implementations are
// scoped to a single namespace when constructed.
type KeyValueStore interface {
	Get(ctx context.Context, userID string) ([]byte, error)
	Set(ctx context.Context, userID string, value []byte) error
	Delete(ctx context.Context, userID string) error
	// GetAndDelete removes the value and returns it in one step, so that
	// concurrent callers never both observe the same value.
	GetAndDelete(ctx context.Context, userID string) ([]byte, error)
}
