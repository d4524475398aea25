package services

import (
	"time"

	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationServiceDB is the persistence gateway for conversations and
// their messages.
type ConversationServiceDB interface {
	CreateConversation(conversation *models.Conversation) error
	GetConversationsByUserID(userID uuid.UUID) ([]models.Conversation, error)
	GetConversationByID(id uint) (*models.Conversation, error)
	UpdateConversation(id uint, messageCount int, updatedAt time.Time) error
	DeleteConversation(id uint) error
	CreateMessage(message *models.Message) error
	GetMessagesByConversationID(conversationID uint, limit int) ([]models.Message, error)
}

// DefaultConversationService implements ConversationServiceDB over gorm.
type DefaultConversationService struct {
	db *gorm.DB
}

func NewConversationServiceDB(db *gorm.DB) ConversationServiceDB {
	return &DefaultConversationService{db: db}
}

func (s *DefaultConversationService) CreateConversation(conversation *models.Conversation) error {
	return s.db.Create(conversation).Error
}

// GetConversationsByUserID returns the caller's conversations, most recently
// touched first.
func (s *DefaultConversationService) GetConversationsByUserID(userID uuid.UUID) ([]models.Conversation, error) {
	var conversations []models.Conversation
	result := s.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&conversations)
	if result.Error != nil {
		return nil, result.Error
	}
	return conversations, nil
}

func (s *DefaultConversationService) GetConversationByID(id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	result := s.db.First(&conversation, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &conversation, nil
}

func (s *DefaultConversationService) UpdateConversation(id uint, messageCount int, updatedAt time.Time) error {
	return s.db.Model(&models.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"message_count": messageCount,
			"updated_at":    updatedAt,
		}).Error
}

// DeleteConversation removes a conversation and its messages. Messages go
// first so a failure never leaves them orphaned.
func (s *DefaultConversationService) DeleteConversation(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Conversation{}, id).Error
	})
}

func (s *DefaultConversationService) CreateMessage(message *models.Message) error {
	return s.db.Create(message).Error
}

// GetMessagesByConversationID returns messages ordered by timestamp
// ascending. A positive limit keeps only the most recent limit messages,
// still in chronological order.
func (s *DefaultConversationService) GetMessagesByConversationID(conversationID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	query := s.db.Where("conversation_id = ?", conversationID)
	if limit > 0 {
		result := query.Order("timestamp desc").Limit(limit).Find(&messages)
		if result.Error != nil {
			return nil, result.Error
		}
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
		return messages, nil
	}
	result := query.Order("timestamp asc").Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}
