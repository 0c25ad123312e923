package database

import (
	"github.com/evandrarf/words7000-bot/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.UserScore{},
		&entity.UserState{},
	)
}
