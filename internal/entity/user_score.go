package entity

import (
	"time"

	"gorm.io/gorm"
)

// UserScore - cumulative quiz results per user
type UserScore struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `gorm:"uniqueIndex;size:100;not null" json:"user_id"` // messaging platform user id
	Point       int            `gorm:"not null;default:0" json:"point"`              // correct answers
	WrongAnswer int            `gorm:"not null;default:0" json:"wrong_answer"`       // wrong answers
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserScore) TableName() string {
	return "user_scores"
}
