package core

import "context"

// LLMProvider is an opaque text-completion service.
type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
