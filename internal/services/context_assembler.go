package services

import (
	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"
)

// ContextAssembler produces the bounded message sequence sent to the
// language model for one turn: the persona instruction followed by the most
// recent windowSize persisted messages, oldest first. It is a pure function
// of stored state.
type ContextAssembler struct {
	store        ConversationServiceDB
	systemPrompt string
	windowSize   int
}

func NewContextAssembler(store ConversationServiceDB, systemPrompt string, windowSize int) *ContextAssembler {
	return &ContextAssembler{
		store:        store,
		systemPrompt: systemPrompt,
		windowSize:   windowSize,
	}
}

func (a *ContextAssembler) Assemble(conversationID uint) ([]llm.ChatMessage, error) {
	history, err := a.store.GetMessagesByConversationID(conversationID, a.windowSize)
	if err != nil {
		return nil, err
	}

	context := make([]llm.ChatMessage, 0, len(history)+1)
	context = append(context, llm.ChatMessage{Role: llm.RoleSystem, Content: a.systemPrompt})
	for _, msg := range history {
		role := llm.RoleUser
		if msg.Sender == models.SenderAssistant {
			role = llm.RoleAssistant
		}
		context = append(context, llm.ChatMessage{Role: role, Content: msg.Content})
	}
	return context, nil
}
