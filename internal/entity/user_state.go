package entity

import "time"

// UserState - opaque per-user value, one row per (namespace, user)
type UserState struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Namespace string    `gorm:"uniqueIndex:idx_user_state_key;size:50;not null" json:"namespace"` // pending_question, collection
	UserID    string    `gorm:"uniqueIndex:idx_user_state_key;size:100;not null" json:"user_id"`
	Value     string    `gorm:"type:text;not null" json:"value"` // JSON document
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserState) TableName() string {
	return "user_states"
}
