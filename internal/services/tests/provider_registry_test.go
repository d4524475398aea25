package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"
	"ai_unk_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertKeepsSingleActiveProvider(t *testing.T) {
	db := newTestDB(t)
	audit := services.NewAuditService(db)
	registry := services.NewProviderRegistry(db, audit, new(MockLLMFactory), time.Second)
	adminID := uuid.New()

	require.NoError(t, registry.UpsertProvider(adminID, services.ProviderUpdate{
		ProviderID: "openai", Model: "gpt-4o", APIKey: "sk-a", IsActive: true,
	}))
	require.NoError(t, registry.UpsertProvider(adminID, services.ProviderUpdate{
		ProviderID: "gemini", Model: "gemini-1.5-pro", APIKey: "sk-b", IsActive: true,
	}))

	providers, err := registry.GetAllProviders()
	require.NoError(t, err)
	require.Len(t, providers, 2)

	activeCount := 0
	for _, provider := range providers {
		if provider.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)

	active, err := registry.GetActiveProvider()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "gemini", active.ProviderID)

	logs, err := audit.GetAuditLogs(10, models.EventProviderSwitched)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestUpsertUpdatesExistingProvider(t *testing.T) {
	db := newTestDB(t)
	registry := services.NewProviderRegistry(db, services.NewAuditService(db), new(MockLLMFactory), time.Second)
	adminID := uuid.New()

	require.NoError(t, registry.UpsertProvider(adminID, services.ProviderUpdate{
		ProviderID: "openai", Model: "gpt-4o-mini", APIKey: "sk-old", IsActive: false,
	}))
	require.NoError(t, registry.UpsertProvider(adminID, services.ProviderUpdate{
		ProviderID: "openai", Model: "gpt-4o", APIKey: "sk-new", IsActive: true,
	}))

	providers, err := registry.GetAllProviders()
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "gpt-4o", providers[0].Model)
	assert.True(t, providers[0].IsActive)
}

func TestGetActiveProviderWhenNoneConfigured(t *testing.T) {
	db := newTestDB(t)
	registry := services.NewProviderRegistry(db, services.NewAuditService(db), new(MockLLMFactory), time.Second)

	active, err := registry.GetActiveProvider()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestIncrementProviderUsage(t *testing.T) {
	db := newTestDB(t)
	registry := services.NewProviderRegistry(db, services.NewAuditService(db), new(MockLLMFactory), time.Second)
	adminID := uuid.New()

	require.NoError(t, registry.UpsertProvider(adminID, services.ProviderUpdate{
		ProviderID: "openai", Model: "gpt-4o", APIKey: "sk-a", IsActive: true,
	}))

	require.NoError(t, registry.IncrementProviderUsage("openai"))
	require.NoError(t, registry.IncrementProviderUsage("openai"))

	providers, err := registry.GetAllProviders()
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, 2, providers[0].UsageCount)
	assert.NotNil(t, providers[0].LastUsed)

	// Unknown providers are a no-op, not an error.
	assert.NoError(t, registry.IncrementProviderUsage("nope"))
}

func TestTestProviderFailureIsStructured(t *testing.T) {
	db := newTestDB(t)
	audit := services.NewAuditService(db)
	mockFactory := new(MockLLMFactory)
	mockInvoker := new(MockInvoker)
	registry := services.NewProviderRegistry(db, audit, mockFactory, time.Second)

	mockFactory.On("InvokerFor", "openai", "gpt-4o", "bad-key").Return(mockInvoker, nil)
	mockInvoker.On("Invoke", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("invalid api key"))

	result, err := registry.TestProvider(context.Background(), uuid.New(), "openai", "gpt-4o", "bad-key")

	// A failing probe is an expected admin workflow, not an error.
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "invalid api key")
	assert.GreaterOrEqual(t, result.LatencyMs, int64(0))

	logs, auditErr := audit.GetAuditLogs(10, models.EventProviderTest)
	require.NoError(t, auditErr)
	require.Len(t, logs, 1)
	assert.Equal(t, false, logs[0].Details["success"])
	assert.Equal(t, "invalid api key", logs[0].Details["error"])
}

func TestTestProviderSuccess(t *testing.T) {
	db := newTestDB(t)
	audit := services.NewAuditService(db)
	mockFactory := new(MockLLMFactory)
	mockInvoker := new(MockInvoker)
	registry := services.NewProviderRegistry(db, audit, mockFactory, time.Second)

	mockFactory.On("InvokerFor", "openai", "gpt-4o", "sk-good").Return(mockInvoker, nil)
	mockInvoker.On("Invoke", mock.Anything, mock.MatchedBy(func(messages []llm.ChatMessage) bool {
		return len(messages) == 2 && messages[0].Role == llm.RoleSystem
	})).Return(&llm.Response{Content: llm.PlainText("test successful"), TokensUsed: 5}, nil)

	result, err := registry.TestProvider(context.Background(), uuid.New(), "openai", "gpt-4o", "sk-good")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Provider connection successful", result.Message)

	logs, auditErr := audit.GetAuditLogs(10, models.EventProviderTest)
	require.NoError(t, auditErr)
	require.Len(t, logs, 1)
	assert.Equal(t, true, logs[0].Details["success"])

	// Probing never persists credential changes.
	providers, err := registry.GetAllProviders()
	require.NoError(t, err)
	assert.Empty(t, providers)
}
