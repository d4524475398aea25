package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAIInvoker serves OpenAI and OpenAI-compatible providers.
type openAIInvoker struct {
	client *openai.Client
	model  string
}

func newOpenAIInvoker(model, apiKey string) (*openAIInvoker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &openAIInvoker{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (o *openAIInvoker) Invoke(ctx context.Context, messages []ChatMessage) (*Response, error) {
	req := openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openAIRole(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:    PlainText(""),
		TokensUsed: resp.Usage.TotalTokens,
	}
	if len(resp.Choices) > 0 {
		out.Content = PlainText(resp.Choices[0].Message.Content)
	}
	return out, nil
}

func openAIRole(role string) string {
	switch role {
	case RoleSystem:
		return openai.ChatMessageRoleSystem
	case RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
