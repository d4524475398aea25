package services

import (
	"errors"

	apperrors "ai_unk_go_backend/internal/errors"
	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A missing conversation and a conversation owned by someone else produce the
// same rejection, so callers cannot probe for existence.
const msgNotYourConversation = "Not your conversation"

// ConversationService wraps the conversation gateway with ownership checks
// and audit recording.
type ConversationService struct {
	store ConversationServiceDB
	audit AuditRecorder
}

func NewConversationService(store ConversationServiceDB, audit AuditRecorder) *ConversationService {
	return &ConversationService{store: store, audit: audit}
}

func (s *ConversationService) ListConversations(userID uuid.UUID) ([]models.Conversation, error) {
	conversations, err := s.store.GetConversationsByUserID(userID)
	if err != nil {
		return nil, apperrors.New500Error(err)
	}
	return conversations, nil
}

func (s *ConversationService) CreateConversation(userID uuid.UUID, title string) (uint, error) {
	conversation := &models.Conversation{
		UserID: userID,
		Title:  title,
	}
	if err := s.store.CreateConversation(conversation); err != nil {
		return 0, apperrors.New500Error(err)
	}
	if err := s.audit.Record(models.EventConversationCreated, &userID, models.ConversationDetails{
		ConversationID: conversation.ID,
	}); err != nil {
		return 0, apperrors.New500Error(err)
	}
	return conversation.ID, nil
}

func (s *ConversationService) DeleteConversation(userID uuid.UUID, conversationID uint) error {
	if _, err := s.requireOwned(userID, conversationID); err != nil {
		return err
	}
	if err := s.store.DeleteConversation(conversationID); err != nil {
		return apperrors.New500Error(err)
	}
	if err := s.audit.Record(models.EventConversationDeleted, &userID, models.ConversationDetails{
		ConversationID: conversationID,
	}); err != nil {
		return apperrors.New500Error(err)
	}
	return nil
}

func (s *ConversationService) GetMessages(userID uuid.UUID, conversationID uint) ([]models.Message, error) {
	if _, err := s.requireOwned(userID, conversationID); err != nil {
		return nil, err
	}
	messages, err := s.store.GetMessagesByConversationID(conversationID, 0)
	if err != nil {
		return nil, apperrors.New500Error(err)
	}
	return messages, nil
}

// requireOwned loads a conversation and verifies the caller owns it. The
// check runs before any mutation.
func (s *ConversationService) requireOwned(userID uuid.UUID, conversationID uint) (*models.Conversation, error) {
	conversation, err := s.store.GetConversationByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New403Error(msgNotYourConversation)
		}
		return nil, apperrors.New500Error(err)
	}
	if conversation.UserID != userID {
		return nil, apperrors.New403Error(msgNotYourConversation)
	}
	return conversation, nil
}
