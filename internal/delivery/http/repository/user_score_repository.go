package repository

import (
	"github.com/evandrarf/words7000-bot/internal/entity"
	"gorm.io/gorm"
)

type (
	UserScoreRepository interface {
		FindByUserID(db *gorm.DB, userID string) (*entity.UserScore, error)
		Create(db *gorm.DB, score *entity.UserScore) error
		Update(db *gorm.DB, score *entity.UserScore) error
	}

	userScoreRepository struct {
		db *gorm.DB
	}
)

func NewUserScoreRepository(db *gorm.DB) UserScoreRepository {
	return &userScoreRepository{db: db}
}

func (r *userScoreRepository) FindByUserID(db *gorm.DB, userID string) (*entity.UserScore, error) {
	if db == nil {
		db = r.db
	}
	var score entity.UserScore
	err := db.Where("user_id = ?", userID).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *userScoreRepository) Create(db *gorm.DB, score *entity.UserScore) error {
	if db == nil {
		db = r.db
	}
	return db.Create(score).Error
}

func (r *userScoreRepository) Update(db *gorm.DB, score *entity.UserScore) error {
	if db == nil {
		db = r.db
	}
	return db.Model(score).Select("point", "wrong_answer").Updates(score).Error
}
