package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
)

type (
	// PendingQuestionRepository is a one-slot mailbox per user holding the
	// word of the outstanding audio question.
	PendingQuestionRepository interface {
		Put(ctx context.Context, userID string, word entity.WordEntry) error
		Exists(ctx context.Context, userID string) (bool, error)
		// Take returns the pending word and removes it.
		Take(ctx context.Context, userID string) (entity.WordEntry, error)
	}

	pendingQuestionRepository struct {
		store KeyValueStore
	}
)

func NewPendingQuestionRepository(store KeyValueStore) PendingQuestionRepository {
	return &pendingQuestionRepository{store: store}
}

func (r *pendingQuestionRepository) Put(ctx context.Context, userID string, word entity.WordEntry) error {
	raw, err := json.Marshal(word)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, userID, raw)
}

func (r *pendingQuestionRepository) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := r.store.Get(ctx, userID)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *pendingQuestionRepository) Take(ctx context.Context, userID string) (entity.WordEntry, error) {
	raw, err := r.store.GetAndDelete(ctx, userID)
	if errors.Is(err, ErrKeyNotFound) {
		return entity.WordEntry{}, entity.ErrNoPendingQuestion
	}
	if err != nil {
		return entity.WordEntry{}, fmt.Errorf("failed to consume pending question: %w", err)
	}

	var word entity.WordEntry
	if err := json.Unmarshal(raw, &word); err != nil {
		return entity.WordEntry{}, fmt.Errorf("corrupt pending question for %s: %w", userID, err)
	}
	return word, nil
}
