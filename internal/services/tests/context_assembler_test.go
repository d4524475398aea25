package services_test

import (
	"fmt"
	"testing"
	"time"

	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/models"
	"ai_unk_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssembleMapsSendersAndPrependsPersona(t *testing.T) {
	mockStore := new(MockConversationServiceDB)
	assembler := services.NewContextAssembler(mockStore, "persona instruction", 10)

	history := []models.Message{
		{Sender: models.SenderUser, Content: "first question"},
		{Sender: models.SenderAssistant, Content: "first answer"},
		{Sender: models.SenderUser, Content: "second question"},
	}
	mockStore.On("GetMessagesByConversationID", uint(1), 10).Return(history, nil)

	context, err := assembler.Assemble(1)

	assert.NoError(t, err)
	assert.Len(t, context, 4)
	assert.Equal(t, llm.ChatMessage{Role: llm.RoleSystem, Content: "persona instruction"}, context[0])
	assert.Equal(t, llm.ChatMessage{Role: llm.RoleUser, Content: "first question"}, context[1])
	assert.Equal(t, llm.ChatMessage{Role: llm.RoleAssistant, Content: "first answer"}, context[2])
	assert.Equal(t, llm.ChatMessage{Role: llm.RoleUser, Content: "second question"}, context[3])
}

func TestAssembleBoundsWindowToMostRecentTen(t *testing.T) {
	db := newTestDB(t)
	store := services.NewConversationServiceDB(db)
	assembler := services.NewContextAssembler(store, "persona instruction", 10)

	conversation := &models.Conversation{UserID: uuid.New(), Title: "long chat"}
	assert.NoError(t, store.CreateConversation(conversation))
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 15; i++ {
		assert.NoError(t, store.CreateMessage(&models.Message{
			ConversationID: conversation.ID,
			Sender:         models.SenderUser,
			Content:        fmt.Sprintf("msg %d", i),
			Timestamp:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	context, err := assembler.Assemble(conversation.ID)

	assert.NoError(t, err)
	// 10 history entries plus the persona entry; the oldest 5 are dropped.
	assert.Len(t, context, 11)
	assert.Equal(t, llm.RoleSystem, context[0].Role)
	for i := 0; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("msg %d", i+6), context[i+1].Content, "history must stay oldest-to-newest")
	}
}
