package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type Conversation struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	MessageCount int       `gorm:"default:0;not null" json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

type Message struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ConversationID uint      `gorm:"index;not null" json:"conversationId"`
	Sender         string    `gorm:"type:varchar(16);not null" json:"sender"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`
	AIProvider     string    `gorm:"type:varchar(64)" json:"aiProvider,omitempty"`
	AIModel        string    `gorm:"type:varchar(128)" json:"aiModel,omitempty"`
	TokensUsed     int       `json:"tokensUsed,omitempty"`
}
