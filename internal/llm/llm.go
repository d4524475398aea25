// Package llm abstracts over the configurable language-model providers.
package llm

import (
	"context"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of the context sent to a provider.
type ChatMessage struct {
	Role    string
	Content string
}

// PartTypeText marks the only part kind whose payload contributes to the
// extracted reply text.
const PartTypeText = "text"

// ContentPart is one typed segment of a structured provider reply.
type ContentPart struct {
	Type string
	Text string
}

// MessageContent is a tagged variant: providers return either a plain string
// or a sequence of typed parts. Exactly one of Text/Parts is set.
type MessageContent struct {
	Text  *string
	Parts []ContentPart
}

// PlainText wraps a plain string reply.
func PlainText(s string) MessageContent {
	return MessageContent{Text: &s}
}

// ExtractText flattens the content variant into the final reply text.
// For part sequences, only "text"-typed parts are concatenated, in order.
// Returns "" when nothing usable is present.
func (c MessageContent) ExtractText() string {
	if c.Text != nil {
		return *c.Text
	}
	var b strings.Builder
	for _, part := range c.Parts {
		if part.Type == PartTypeText {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// Response is a provider reply plus its usage accounting.
type Response struct {
	Content    MessageContent
	TokensUsed int
}

// Invoker issues one chat completion against a concrete provider.
type Invoker interface {
	Invoke(ctx context.Context, messages []ChatMessage) (*Response, error)
}

// Factory builds invokers from stored provider settings. Default covers the
// degraded path where no provider has been activated yet.
type Factory interface {
	InvokerFor(providerID, model, apiKey string) (Invoker, error)
	Default() (Invoker, error)
}
