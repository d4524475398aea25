package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiInvoker serves Google Gemini models. The client is created per
// invocation because the credential comes from the stored provider setting.
type geminiInvoker struct {
	model  string
	apiKey string
}

func newGeminiInvoker(model, apiKey string) (*geminiInvoker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	return &geminiInvoker{model: model, apiKey: apiKey}, nil
}

func (g *geminiInvoker) Invoke(ctx context.Context, messages []ChatMessage) (*Response, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	var history []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
			}
		case RoleAssistant:
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no user message to send")
	}

	// The final entry is the message being sent; everything before it is
	// prior turns.
	last := history[len(history)-1]
	cs := model.StartChat()
	cs.History = history[:len(history)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, err
	}

	out := &Response{}
	if resp.UsageMetadata != nil {
		out.TokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.Content.Parts = append(out.Content.Parts, ContentPart{
					Type: PartTypeText,
					Text: string(text),
				})
			}
		}
	}
	return out, nil
}
