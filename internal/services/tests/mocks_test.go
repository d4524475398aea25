package services_test

import (
	"context"
	"testing"
	"time"

	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.Message{},
		&models.UserProgress{},
		&models.AIProviderSetting{},
		&models.AuditLog{},
	))
	return db
}

type MockConversationServiceDB struct {
	mock.Mock
}

func (m *MockConversationServiceDB) CreateConversation(conversation *models.Conversation) error {
	args := m.Called(conversation)
	return args.Error(0)
}

func (m *MockConversationServiceDB) GetConversationsByUserID(userID uuid.UUID) ([]models.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *MockConversationServiceDB) GetConversationByID(id uint) (*models.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationServiceDB) UpdateConversation(id uint, messageCount int, updatedAt time.Time) error {
	args := m.Called(id, messageCount, updatedAt)
	return args.Error(0)
}

func (m *MockConversationServiceDB) DeleteConversation(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockConversationServiceDB) CreateMessage(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockConversationServiceDB) GetMessagesByConversationID(conversationID uint, limit int) ([]models.Message, error) {
	args := m.Called(conversationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

type MockProviderSource struct {
	mock.Mock
}

func (m *MockProviderSource) GetActiveProvider() (*models.AIProviderSetting, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AIProviderSetting), args.Error(1)
}

func (m *MockProviderSource) IncrementProviderUsage(providerID string) error {
	args := m.Called(providerID)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(eventType string, userID *uuid.UUID, details interface{}) error {
	args := m.Called(eventType, userID, details)
	return args.Error(0)
}

func (m *MockAuditService) GetAuditLogs(limit int, eventType string) ([]models.AuditLog, error) {
	args := m.Called(limit, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditLog), args.Error(1)
}

type MockLLMFactory struct {
	mock.Mock
}

func (m *MockLLMFactory) InvokerFor(providerID, model, apiKey string) (llm.Invoker, error) {
	args := m.Called(providerID, model, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(llm.Invoker), args.Error(1)
}

func (m *MockLLMFactory) Default() (llm.Invoker, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(llm.Invoker), args.Error(1)
}

type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) Invoke(ctx context.Context, messages []llm.ChatMessage) (*llm.Response, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}
