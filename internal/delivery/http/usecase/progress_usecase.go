package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/words7000-bot/internal/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/mapper"
	"gorm.io/gorm"
)

type ProgressUsecase interface {
	// GetOrInit returns the user's progress, creating a zeroed record when
	// none exists. created reports whether the record was new.
	GetOrInit(ctx context.Context, userID string) (progress *entity.UserProgress, created bool, err error)
	IncrementPoint(ctx context.Context, userID string) (*entity.UserProgress, error)
	IncrementWrong(ctx context.Context, userID string) (*entity.UserProgress, error)
}

type ProgressConfig struct {
	DB         *gorm.DB
	Repository repository.UserScoreRepository
}

type progressUsecase struct {
	cfg   ProgressConfig
	locks userLocks
}

func NewProgressUsecase(cfg ProgressConfig) ProgressUsecase {
	return &progressUsecase{cfg: cfg}
}

func (u *progressUsecase) GetOrInit(ctx context.Context, userID string) (*entity.UserProgress, bool, error) {
	unlock := u.locks.lock(userID)
	defer unlock()

	var (
		score   *internalEntity.UserScore
		created bool
	)
	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := u.cfg.Repository.FindByUserID(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			score = &internalEntity.UserScore{UserID: userID}
			created = true
			return u.cfg.Repository.Create(tx, score)
		}
		if err != nil {
			return err
		}
		score = found
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to load progress for %s: %w", userID, err)
	}
	return mapper.ConvertToUserProgress(score), created, nil
}

func (u *progressUsecase) IncrementPoint(ctx context.Context, userID string) (*entity.UserProgress, error) {
	return u.update(ctx, userID, func(s *internalEntity.UserScore) { s.Point++ })
}

func (u *progressUsecase) IncrementWrong(ctx context.Context, userID string) (*entity.UserProgress, error) {
	return u.update(ctx, userID, func(s *internalEntity.UserScore) { s.WrongAnswer++ })
}

// update reads the current row right before writing it back; the per-user
// lock keeps two deliveries for the same user from interleaving.
func (u *progressUsecase) update(ctx context.Context, userID string, apply func(*internalEntity.UserScore)) (*entity.UserProgress, error) {
	unlock := u.locks.lock(userID)
	defer unlock()

	var score *internalEntity.UserScore
	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := u.cfg.Repository.FindByUserID(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			score = &internalEntity.UserScore{UserID: userID}
			apply(score)
			return u.cfg.Repository.Create(tx, score)
		}
		if err != nil {
			return err
		}
		score = found
		apply(score)
		return u.cfg.Repository.Update(tx, score)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update progress for %s: %w", userID, err)
	}
	return mapper.ConvertToUserProgress(score), nil
}
