package llm

import "fmt"

// ClientFactory builds invokers for the provider kinds this deployment
// supports. The default triple backs chat turns taken while no stored
// provider is active.
type ClientFactory struct {
	defaultProvider string
	defaultModel    string
	defaultAPIKey   string
}

func NewClientFactory(defaultProvider, defaultModel, defaultAPIKey string) *ClientFactory {
	return &ClientFactory{
		defaultProvider: defaultProvider,
		defaultModel:    defaultModel,
		defaultAPIKey:   defaultAPIKey,
	}
}

func (f *ClientFactory) InvokerFor(providerID, model, apiKey string) (Invoker, error) {
	switch providerID {
	case "openai":
		return newOpenAIInvoker(model, apiKey)
	case "gemini", "google":
		return newGeminiInvoker(model, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider kind %q", providerID)
	}
}

func (f *ClientFactory) Default() (Invoker, error) {
	return f.InvokerFor(f.defaultProvider, f.defaultModel, f.defaultAPIKey)
}
