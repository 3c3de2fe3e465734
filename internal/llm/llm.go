package llm

import (
	"context"
	"errors"
)

// Completer abstracts a text-generation provider. Implementations make a
// single round trip per call; callers decide what, if anything, to retry.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Completer = PlaceholderClient{}
