package services

import (
	"encoding/json"
	"time"

	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 100

// AuditServiceDB records and retrieves audit entries.
type AuditServiceDB interface {
	AuditRecorder
	GetAuditLogs(limit int, eventType string) ([]models.AuditLog, error)
}

type DefaultAuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) AuditServiceDB {
	return &DefaultAuditService{db: db}
}

// Record appends one immutable entry. A persistence fault here propagates to
// the caller: the audit trail is part of the accountability contract, so a
// drop is never silent.
func (s *DefaultAuditService) Record(eventType string, userID *uuid.UUID, details interface{}) error {
	entry := models.AuditLog{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now(),
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &entry.Details); err != nil {
			return err
		}
	}
	return s.db.Create(&entry).Error
}

// GetAuditLogs returns entries newest-first, optionally filtered by event
// kind.
func (s *DefaultAuditService) GetAuditLogs(limit int, eventType string) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	query := s.db.Order("timestamp desc, id desc").Limit(limit)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	var logs []models.AuditLog
	result := query.Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
