package services

import (
	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
)

// ActiveProviderSource is the slice of the provider registry the turn
// orchestrator depends on.
type ActiveProviderSource interface {
	GetActiveProvider() (*models.AIProviderSetting, error)
	IncrementProviderUsage(providerID string) error
}

// AuditRecorder appends immutable audit entries. details is one of the typed
// payload structs from the models package.
type AuditRecorder interface {
	Record(eventType string, userID *uuid.UUID, details interface{}) error
}
