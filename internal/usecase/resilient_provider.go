package usecase

import (
	"context"
	"time"

	"postforge/internal/domain/repository"
)

// ResilientProvider wraps a CompletionProvider with bounded retries. A
// failed or empty completion is retried after a short delay; once the
// attempts are exhausted the last error is propagated.
type ResilientProvider struct {
	inner      repository.CompletionProvider
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration // cap per generation so one slow call cannot hang a run
}

func NewResilientProvider(inner repository.CompletionProvider) *ResilientProvider {
	return &ResilientProvider{
		inner:      inner,
		maxRetries: 2, // 3 attempts total
		baseDelay:  time.Second,
		timeout:    60 * time.Second,
	}
}

func (r *ResilientProvider) Generate(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		text, err := r.inner.Generate(genCtx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == r.maxRetries {
			break
		}
		select {
		case <-time.After(r.baseDelay):
		case <-genCtx.Done():
			return "", genCtx.Err()
		}
	}
	return "", lastErr
}
