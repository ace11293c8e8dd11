package repository

import (
	"context"
	"time"
)

// CompletionProvider is the single capability the pipeline consumes: send a
// prompt, receive the generated text or an error.
type CompletionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CompletionCache stores completions keyed by exact prompt.
type CompletionCache interface {
	Get(ctx context.Context, prompt string) (string, bool, error)
	Set(ctx context.Context, prompt, completion string, ttl time.Duration) error
}
