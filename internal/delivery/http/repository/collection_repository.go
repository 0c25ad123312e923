package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
)

type (
	CollectionRepository interface {
		// Load returns the saved words in insertion order, or nil when the
		// user has none.
		Load(ctx context.Context, userID string) ([]entity.WordEntry, error)
		Save(ctx context.Context, userID string, words []entity.WordEntry) error
	}

	collectionRepository struct {
		store KeyValueStore
	}

	collectionDocument struct {
		User  string             `json:"user"`
		Words []entity.WordEntry `json:"words"`
	}
)

func NewCollectionRepository(store KeyValueStore) CollectionRepository {
	return &collectionRepository{store: store}
}

func (r *collectionRepository) Load(ctx context.Context, userID string) ([]entity.WordEntry, error) {
	raw, err := r.store.Get(ctx, userID)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc collectionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("corrupt collection for %s: %w", userID, err)
	}
	return doc.Words, nil
}

func (r *collectionRepository) Save(ctx context.Context, userID string, words []entity.WordEntry) error {
	if words == nil {
		words = []entity.WordEntry{}
	}
	raw, err := json.Marshal(collectionDocument{User: userID, Words: words})
	if err != nil {
		return err
	}
	return r.store.Set(ctx, userID, raw)
}
