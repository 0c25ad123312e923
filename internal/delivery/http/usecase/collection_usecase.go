package usecase

import (
	"context"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	"github.com/samber/lo"
)

type CollectionUsecase interface {
	Add(ctx context.Context, userID string, word entity.WordEntry) error
	Remove(ctx context.Context, userID string, wordID entity.WordID) error
	List(ctx context.Context, userID string) ([]entity.WordEntry, error)
}

type collectionUsecase struct {
	repo     repository.CollectionRepository
	capacity int
	locks    userLocks
}

func NewCollectionUsecase(repo repository.CollectionRepository) CollectionUsecase {
	return &collectionUsecase{repo: repo, capacity: entity.CollectionCapacity}
}

func (u *collectionUsecase) Add(ctx context.Context, userID string, word entity.WordEntry) error {
	unlock := u.locks.lock(userID)
	defer unlock()

	words, err := u.repo.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}
	if len(words) >= u.capacity {
		return entity.ErrCollectionFull
	}
	if lo.ContainsBy(words, func(w entity.WordEntry) bool { return w.ID == word.ID }) {
		return entity.ErrAlreadyCollected
	}
	return u.repo.Save(ctx, userID, append(words, word))
}

func (u *collectionUsecase) Remove(ctx context.Context, userID string, wordID entity.WordID) error {
	unlock := u.locks.lock(userID)
	defer unlock()

	words, err := u.repo.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}
	_, index, found := lo.FindIndexOf(words, func(w entity.WordEntry) bool { return w.ID == wordID })
	if !found {
		return entity.ErrNotCollected
	}
	return u.repo.Save(ctx, userID, append(words[:index], words[index+1:]...))
}

func (u *collectionUsecase) List(ctx context.Context, userID string) ([]entity.WordEntry, error) {
	words, err := u.repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	return words, nil
}
