package llm

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	// Complete sends one chat completion request and returns the first choice.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the provider name used in logs.
	Name() string
}
