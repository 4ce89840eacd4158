package ai

import (
	"context"
)

// Provider defines the contract for interacting with text-generation models.
// The flows treat the output as untrusted free text.
type Provider interface {
	// Generate sends a single prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateMessages sends a short role-tagged conversation. The last message must be
	// a user turn; earlier messages are passed as history.
	GenerateMessages(ctx context.Context, messages []Message) (string, error)
}
