package services

import (
	"context"
	"errors"
	"time"

	apperrors "ai_unk_go_backend/internal/errors"
	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// probe messages sent by TestProvider.
const (
	probeSystemPrompt = "You are a helpful assistant."
	probeUserPrompt   = `Say "test successful" if you can read this.`
)

// ProviderTestResult is the structured outcome of a connectivity probe.
// Probe failures are reported here, never raised as errors.
type ProviderTestResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	LatencyMs int64  `json:"latencyMs"`
}

// ProviderUpdate is the admin input for upserting a provider setting.
type ProviderUpdate struct {
	ProviderID string `json:"providerId" binding:"required"`
	Model      string `json:"model" binding:"required"`
	APIKey     string `json:"apiKey" binding:"required"`
	IsActive   bool   `json:"isActive"`
}

// ProviderRegistry manages the configured LLM providers and the single
// active-provider invariant.
type ProviderRegistry interface {
	ActiveProviderSource
	GetAllProviders() ([]models.AIProviderSetting, error)
	UpsertProvider(userID uuid.UUID, update ProviderUpdate) error
	TestProvider(ctx context.Context, userID uuid.UUID, providerID, model, apiKey string) (ProviderTestResult, error)
}

type DefaultProviderRegistry struct {
	db           *gorm.DB
	audit        AuditRecorder
	llmFactory   llm.Factory
	probeTimeout time.Duration
}

func NewProviderRegistry(db *gorm.DB, audit AuditRecorder, llmFactory llm.Factory, probeTimeout time.Duration) ProviderRegistry {
	return &DefaultProviderRegistry{
		db:           db,
		audit:        audit,
		llmFactory:   llmFactory,
		probeTimeout: probeTimeout,
	}
}

func (r *DefaultProviderRegistry) GetAllProviders() ([]models.AIProviderSetting, error) {
	var providers []models.AIProviderSetting
	result := r.db.Order("provider_id asc").Find(&providers)
	if result.Error != nil {
		return nil, result.Error
	}
	return providers, nil
}

// UpsertProvider inserts or updates the setting keyed by providerId. When
// activating, every other provider is deactivated in the same transaction so
// at most one row ends active.
func (r *DefaultProviderRegistry) UpsertProvider(userID uuid.UUID, update ProviderUpdate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if update.IsActive {
			if err := tx.Model(&models.AIProviderSetting{}).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		var existing models.AIProviderSetting
		err := tx.Where("provider_id = ?", update.ProviderID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Updates(map[string]interface{}{
				"model":     update.Model,
				"api_key":   update.APIKey,
				"is_active": update.IsActive,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.AIProviderSetting{
				ProviderID: update.ProviderID,
				Model:      update.Model,
				APIKey:     update.APIKey,
				IsActive:   update.IsActive,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return err
	}

	return r.audit.Record(models.EventProviderSwitched, &userID, models.ProviderSwitchDetails{
		ProviderID: update.ProviderID,
		Model:      update.Model,
		IsActive:   update.IsActive,
	})
}

// GetActiveProvider returns the single active provider, or nil when none is
// configured.
func (r *DefaultProviderRegistry) GetActiveProvider() (*models.AIProviderSetting, error) {
	var provider models.AIProviderSetting
	err := r.db.Where("is_active = ?", true).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// IncrementProviderUsage bumps the usage counter and lastUsed. Unknown
// providers are a no-op.
func (r *DefaultProviderRegistry) IncrementProviderUsage(providerID string) error {
	return r.db.Model(&models.AIProviderSetting{}).
		Where("provider_id = ?", providerID).
		Updates(map[string]interface{}{
			"usage_count": gorm.Expr("usage_count + ?", 1),
			"last_used":   time.Now(),
		}).Error
}

// TestProvider probes the given provider/model/credential with a minimal
// request and reports the outcome without persisting anything. Probe
// failures come back in the result; the returned error is reserved for
// audit-trail faults.
func (r *DefaultProviderRegistry) TestProvider(ctx context.Context, userID uuid.UUID, providerID, model, apiKey string) (ProviderTestResult, error) {
	start := time.Now()

	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	invoker, err := r.llmFactory.InvokerFor(providerID, model, apiKey)
	if err == nil {
		_, err = invoker.Invoke(probeCtx, []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: probeSystemPrompt},
			{Role: llm.RoleUser, Content: probeUserPrompt},
		})
	}
	latency := time.Since(start).Milliseconds()

	var result ProviderTestResult
	details := models.ProviderTestDetails{
		ProviderID: providerID,
		Model:      model,
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("provider", providerID).
			Str("model", model).
			Msg("Provider connectivity test failed")
		result = ProviderTestResult{Success: false, Message: err.Error(), LatencyMs: latency}
		details.Error = err.Error()
	} else {
		result = ProviderTestResult{Success: true, Message: "Provider connection successful", LatencyMs: latency}
		details.Success = true
		details.Latency = latency
	}

	if auditErr := r.audit.Record(models.EventProviderTest, &userID, details); auditErr != nil {
		return result, apperrors.New500Error(auditErr)
	}
	return result, nil
}
