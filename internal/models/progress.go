package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress tracks per-user aggregate activity. One row per user.
type UserProgress struct {
	ID                 uint        `gorm:"primarykey" json:"id"`
	UserID             uuid.UUID   `gorm:"type:uuid;uniqueIndex" json:"userId"`
	TotalConversations int         `gorm:"default:0;not null" json:"totalConversations"`
	TotalMessages      int         `gorm:"default:0;not null" json:"totalMessages"`
	TopicsDiscussed    StringArray `gorm:"type:json" json:"topicsDiscussed"`
	Achievements       StringArray `gorm:"type:json" json:"achievements"`
	LastTopic          string      `gorm:"type:text" json:"lastTopic"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}
