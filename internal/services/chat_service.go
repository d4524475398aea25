package services

import (
	"context"
	"errors"
	"time"

	apperrors "ai_unk_go_backend/internal/errors"
	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"
	"ai_unk_go_backend/internal/prompt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// contextWindowSize bounds the persisted history sent with each turn.
	contextWindowSize = 10

	// defaultProviderLabel stamps turns served while no stored provider is
	// active.
	defaultProviderLabel = "default"

	// fallbackReply substitutes for a provider reply with no usable text.
	fallbackReply = "I'm having trouble responding right now, lil' nephew. Try again in a moment."

	msgChatFailed = "Failed to get AI response"
)

// ChatService orchestrates one chat turn: ownership gate, user-message
// persistence, context assembly, provider dispatch, reply persistence with
// usage accounting, and audit.
type ChatService struct {
	conversations ConversationServiceDB
	providers     ActiveProviderSource
	audit         AuditRecorder
	llmFactory    llm.Factory
	assembler     *ContextAssembler
}

func NewChatService(
	conversations ConversationServiceDB,
	providers ActiveProviderSource,
	audit AuditRecorder,
	llmFactory llm.Factory,
) *ChatService {
	return &ChatService{
		conversations: conversations,
		providers:     providers,
		audit:         audit,
		llmFactory:    llmFactory,
		assembler:     NewContextAssembler(conversations, prompt.AIUnkSystemPrompt, contextWindowSize),
	}
}

// SendTurn processes one user message and returns the assistant's reply.
//
// The user's message is persisted unconditionally once ownership is
// verified; every downstream effect (assistant message, counters, provider
// usage, audit) depends on the provider outcome and happens in a fixed
// order. Provider failures are audited with full detail and surfaced as a
// generic internal failure.
func (s *ChatService) SendTurn(ctx context.Context, userID uuid.UUID, conversationID uint, text string) (string, error) {
	conversation, err := s.conversations.GetConversationByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.New403Error(msgNotYourConversation)
		}
		return "", apperrors.New500Error(err)
	}
	if conversation.UserID != userID {
		return "", apperrors.New403Error(msgNotYourConversation)
	}

	userMessage := &models.Message{
		ConversationID: conversationID,
		Sender:         models.SenderUser,
		Content:        text,
		Timestamp:      time.Now(),
	}
	if err := s.conversations.CreateMessage(userMessage); err != nil {
		return "", apperrors.New500Error(err)
	}

	turnContext, err := s.assembler.Assemble(conversationID)
	if err != nil {
		return "", apperrors.New500Error(err)
	}

	active, err := s.providers.GetActiveProvider()
	if err != nil {
		return "", apperrors.New500Error(err)
	}

	providerLabel := defaultProviderLabel
	modelLabel := defaultProviderLabel
	var invoker llm.Invoker
	if active != nil {
		providerLabel = active.ProviderID
		modelLabel = active.Model
		invoker, err = s.llmFactory.InvokerFor(active.ProviderID, active.Model, active.APIKey)
	} else {
		invoker, err = s.llmFactory.Default()
	}

	var response *llm.Response
	if err == nil {
		response, err = invoker.Invoke(ctx, turnContext)
	}
	if err != nil {
		log.Error().
			Err(err).
			Uint("conversationID", conversationID).
			Str("provider", providerLabel).
			Msg("Chat turn failed")
		if auditErr := s.audit.Record(models.EventError, &userID, models.ErrorDetails{
			ConversationID: conversationID,
			Error:          err.Error(),
		}); auditErr != nil {
			return "", apperrors.New500Error(auditErr)
		}
		return "", apperrors.NewInternalError(msgChatFailed, err)
	}

	reply := response.Content.ExtractText()
	if reply == "" {
		reply = fallbackReply
	}

	assistantMessage := &models.Message{
		ConversationID: conversationID,
		Sender:         models.SenderAssistant,
		Content:        reply,
		Timestamp:      time.Now(),
		AIProvider:     providerLabel,
		AIModel:        modelLabel,
		TokensUsed:     response.TokensUsed,
	}
	if err := s.conversations.CreateMessage(assistantMessage); err != nil {
		return "", apperrors.New500Error(err)
	}

	if err := s.conversations.UpdateConversation(conversationID, conversation.MessageCount+2, time.Now()); err != nil {
		return "", apperrors.New500Error(err)
	}

	if active != nil {
		if err := s.providers.IncrementProviderUsage(active.ProviderID); err != nil {
			return "", apperrors.New500Error(err)
		}
	}

	if err := s.audit.Record(models.EventChat, &userID, models.ChatDetails{
		ConversationID: conversationID,
		Provider:       providerLabel,
		TokensUsed:     response.TokensUsed,
	}); err != nil {
		return "", apperrors.New500Error(err)
	}

	return reply, nil
}
