package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResilientProvider(inner *flakyProvider) *ResilientProvider {
	return &ResilientProvider{
		inner:      inner,
		maxRetries: 2,
		baseDelay:  time.Millisecond,
		timeout:    time.Second,
	}
}

func TestResilientProviderRecoversWithinBound(t *testing.T) {
	inner := &flakyProvider{failures: 2, response: "ok"}
	provider := newTestResilientProvider(inner)

	text, err := provider.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, inner.calls)
}

func TestResilientProviderExhaustsRetries(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := newTestResilientProvider(inner)

	_, err := provider.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls, "three attempts total")
}

func TestMeteredProviderRecordsEveryRoundTrip(t *testing.T) {
	ledger := NewUsageLedger()
	inner := &stubProvider{rules: []promptRule{{match: "", response: strings.Repeat("o", 400)}}}
	provider := NewMeteredProvider(inner, ledger, "gemini-1.5-flash")

	_, err := provider.Generate(context.Background(), strings.Repeat("i", 400))
	require.NoError(t, err)
	_, err = provider.Generate(context.Background(), strings.Repeat("i", 400))
	require.NoError(t, err)

	summary := ledger.SessionSummary()
	assert.Equal(t, 2, summary.Requests)
	assert.Equal(t, 200, summary.InputTokens)
	assert.Equal(t, 200, summary.OutputTokens)
}

func TestMeteredProviderSkipsFailedCalls(t *testing.T) {
	ledger := NewUsageLedger()
	inner := &stubProvider{fail: errors.New("boom")}
	provider := NewMeteredProvider(inner, ledger, "gemini-1.5-flash")

	_, err := provider.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Zero(t, ledger.SessionSummary().Requests)
}

// mapCache is an in-memory CompletionCache for tests.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
}

func (m *mapCache) Get(_ context.Context, prompt string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[prompt]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, prompt, completion string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[prompt] = completion
	return nil
}

func TestCachedProviderServesHitsWithoutInnerCall(t *testing.T) {
	inner := &stubProvider{rules: []promptRule{{match: "", response: "fresh"}}}
	cache := &mapCache{entries: map[string]string{"hello": "cached"}}
	provider := NewCachedProvider(inner, cache, time.Minute, testLogger())

	text, err := provider.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "cached", text)
	assert.Empty(t, inner.prompts)
}

func TestCachedProviderStoresMisses(t *testing.T) {
	inner := &stubProvider{rules: []promptRule{{match: "", response: "fresh"}}}
	cache := &mapCache{}
	provider := NewCachedProvider(inner, cache, time.Minute, testLogger())

	text, err := provider.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "fresh", text)
	assert.Equal(t, "fresh", cache.entries["hello"])
}

func TestCachedProviderIgnoresCacheFailures(t *testing.T) {
	inner := &stubProvider{rules: []promptRule{{match: "", response: "fresh"}}}
	cache := &mapCache{getErr: errors.New("redis down")}
	provider := NewCachedProvider(inner, cache, time.Minute, testLogger())

	text, err := provider.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "fresh", text)
}
