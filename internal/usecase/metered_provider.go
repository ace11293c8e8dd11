package usecase

import (
	"context"

	"postforge/internal/domain/repository"
)

// MeteredProvider records every completed round trip into the usage ledger.
// It sits inside the cache decorator so cache hits cost nothing.
type MeteredProvider struct {
	inner  repository.CompletionProvider
	ledger *UsageLedger
	model  string
}

func NewMeteredProvider(inner repository.CompletionProvider, ledger *UsageLedger, model string) *MeteredProvider {
	return &MeteredProvider{inner: inner, ledger: ledger, model: model}
}

func (m *MeteredProvider) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := m.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	m.ledger.RecordRequest(m.model, prompt, text)
	return text, nil
}
