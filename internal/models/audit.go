package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit event kinds. The set is closed: every mutating or failing
// operation maps to exactly one of these.
const (
	EventConversationCreated = "conversation_created"
	EventConversationDeleted = "conversation_deleted"
	EventChat                = "chat"
	EventError               = "error"
	EventProviderSwitched    = "provider_switched"
	EventProviderTest        = "provider_test"
)

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	EventType string     `gorm:"type:varchar(64);index;not null" json:"eventType"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Details   JSONMap    `gorm:"type:json" json:"details"`
	Timestamp time.Time  `gorm:"index" json:"timestamp"`
}

// Typed detail payloads, one per event kind.

type ConversationDetails struct {
	ConversationID uint `json:"conversationId"`
}

type ChatDetails struct {
	ConversationID uint   `json:"conversationId"`
	Provider       string `json:"provider"`
	TokensUsed     int    `json:"tokensUsed"`
}

type ErrorDetails struct {
	ConversationID uint   `json:"conversationId"`
	Error          string `json:"error"`
}

type ProviderSwitchDetails struct {
	ProviderID string `json:"providerId"`
	Model      string `json:"model"`
	IsActive   bool   `json:"isActive"`
}

type ProviderTestDetails struct {
	ProviderID string `json:"providerId"`
	Model      string `json:"model"`
	Success    bool   `json:"success"`
	Latency    int64  `json:"latency,omitempty"`
	Error      string `json:"error,omitempty"`
}
