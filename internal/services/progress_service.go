package services

import (
	"errors"

	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressUpdate is a partial update; nil fields keep their current value.
type ProgressUpdate struct {
	TotalConversations *int     `json:"totalConversations"`
	TotalMessages      *int     `json:"totalMessages"`
	TopicsDiscussed    []string `json:"topicsDiscussed"`
	Achievements       []string `json:"achievements"`
	LastTopic          *string  `json:"lastTopic"`
}

// ProgressServiceDB upserts the per-user progress record.
type ProgressServiceDB interface {
	GetProgress(userID uuid.UUID) (*models.UserProgress, error)
	UpdateProgress(userID uuid.UUID, update ProgressUpdate) error
}

type DefaultProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) ProgressServiceDB {
	return &DefaultProgressService{db: db}
}

// GetProgress returns the user's progress record, creating it with zero
// defaults on first access.
func (s *DefaultProgressService) GetProgress(userID uuid.UUID) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := s.db.Where("user_id = ?", userID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.UserProgress{
		UserID:          userID,
		TopicsDiscussed: models.StringArray{},
		Achievements:    models.StringArray{},
	}
	if err := s.db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *DefaultProgressService) UpdateProgress(userID uuid.UUID, update ProgressUpdate) error {
	progress, err := s.GetProgress(userID)
	if err != nil {
		return err
	}

	if update.TotalConversations != nil {
		progress.TotalConversations = *update.TotalConversations
	}
	if update.TotalMessages != nil {
		progress.TotalMessages = *update.TotalMessages
	}
	if update.TopicsDiscussed != nil {
		progress.TopicsDiscussed = models.StringArray(update.TopicsDiscussed)
	}
	if update.Achievements != nil {
		progress.Achievements = models.StringArray(update.Achievements)
	}
	if update.LastTopic != nil {
		progress.LastTopic = *update.LastTopic
	}
	return s.db.Save(progress).Error
}
