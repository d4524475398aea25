package services_test

import (
	"testing"

	"ai_unk_go_backend/internal/models"
	"ai_unk_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRetrieval(t *testing.T) {
	db := newTestDB(t)
	service := services.NewAuditService(db)
	userID := uuid.New()

	require.NoError(t, service.Record(models.EventChat, &userID, models.ChatDetails{
		ConversationID: 1, Provider: "openai", TokensUsed: 12,
	}))
	require.NoError(t, service.Record(models.EventError, &userID, models.ErrorDetails{
		ConversationID: 1, Error: "rate limit exceeded",
	}))
	require.NoError(t, service.Record(models.EventChat, nil, models.ChatDetails{
		ConversationID: 2, Provider: "gemini", TokensUsed: 7,
	}))

	logs, err := service.GetAuditLogs(10, "")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	// Newest first.
	assert.Equal(t, models.EventChat, logs[0].EventType)
	assert.Equal(t, float64(2), logs[0].Details["conversationId"])
	assert.Nil(t, logs[0].UserID)
	assert.Equal(t, models.EventError, logs[1].EventType)
	require.NotNil(t, logs[1].UserID)
	assert.Equal(t, userID, *logs[1].UserID)

	chats, err := service.GetAuditLogs(10, models.EventChat)
	require.NoError(t, err)
	assert.Len(t, chats, 2)

	limited, err := service.GetAuditLogs(1, "")
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAuditDetailsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := services.NewAuditService(db)

	require.NoError(t, service.Record(models.EventProviderTest, nil, models.ProviderTestDetails{
		ProviderID: "openai",
		Model:      "gpt-4o",
		Success:    true,
		Latency:    42,
	}))

	logs, err := service.GetAuditLogs(1, models.EventProviderTest)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "openai", logs[0].Details["providerId"])
	assert.Equal(t, true, logs[0].Details["success"])
	assert.Equal(t, float64(42), logs[0].Details["latency"])
}
