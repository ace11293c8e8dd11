package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"postforge/internal/domain/repository"
)

// CachedProvider serves identical prompts from an exact-match cache before
// touching the model. Cache failures are logged and ignored so a degraded
// cache never breaks generation.
type CachedProvider struct {
	inner  repository.CompletionProvider
	cache  repository.CompletionCache
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCachedProvider(inner repository.CompletionProvider, cache repository.CompletionCache, ttl time.Duration, logger *logrus.Logger) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if cached, ok, err := c.cache.Get(ctx, prompt); err != nil {
		c.logger.WithError(err).Warn("Completion cache lookup failed")
	} else if ok {
		return cached, nil
	}

	text, err := c.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, prompt, text, c.ttl); err != nil {
		c.logger.WithError(err).Warn("Completion cache store failed")
	}
	return text, nil
}
