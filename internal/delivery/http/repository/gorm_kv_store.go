package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormKeyValueStore struct {
	db        *gorm.DB
	namespace string
}

func NewGormKeyValueStore(db *gorm.DB, namespace string) KeyValueStore {
	return &gormKeyValueStore{db: db, namespace: namespace}
}

func (s *gormKeyValueStore) Get(ctx context.Context, userID string) ([]byte, error) {
	var state entity.UserState
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND user_id = ?", s.namespace, userID).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s state: %w", s.namespace, err)
	}
	return []byte(state.Value), nil
}

func (s *gormKeyValueStore) Set(ctx context.Context, userID string, value []byte) error {
	state := entity.UserState{Namespace: s.namespace, UserID: userID, Value: string(value)}
	// Upsert on (namespace, user_id)
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&state).Error
}

func (s *gormKeyValueStore) Delete(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("namespace = ? AND user_id = ?", s.namespace, userID).
		Delete(&entity.UserState{}).Error
}

// GetAndDelete only returns the value when its own delete removed the row.
// A concurrent caller that loses the race sees RowsAffected == 0.
func (s *gormKeyValueStore) GetAndDelete(ctx context.Context, userID string) ([]byte, error) {
	var value []byte
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state entity.UserState
		err := tx.Where("namespace = ? AND user_id = ?", s.namespace, userID).First(&state).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKeyNotFound
		}
		if err != nil {
			return err
		}

		res := tx.Where("id = ? AND value = ?", state.ID, state.Value).Delete(&entity.UserState{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrKeyNotFound
		}
		value = []byte(state.Value)
		return nil
	})
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("take %s state: %w", s.namespace, err)
	}
	return value, nil
}
