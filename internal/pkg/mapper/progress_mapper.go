package mapper

import (
	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/words7000-bot/internal/entity"
)

// ConvertToUserProgress - Convert DB score row to domain progress
func ConvertToUserProgress(score *dbEntity.UserScore) *entity.UserProgress {
	if score == nil {
		return nil
	}
	return &entity.UserProgress{
		UserID:      score.UserID,
		Point:       score.Point,
		WrongAnswer: score.WrongAnswer,
	}
}
