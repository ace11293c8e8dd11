package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// promptRule routes a stubbed response by prompt substring.
type promptRule struct {
	match    string
	response string
	err      error
}

// stubProvider is a deterministic CompletionProvider for tests. The first
// rule whose match substring appears in the prompt wins.
type stubProvider struct {
	mu      sync.Mutex
	rules   []promptRule
	fail    error
	prompts []string
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.fail != nil {
		return "", s.fail
	}
	for _, rule := range s.rules {
		if strings.Contains(prompt, rule.match) {
			if rule.err != nil {
				return "", rule.err
			}
			return rule.response, nil
		}
	}
	return "", errors.New("stub: no rule matched prompt")
}

func (s *stubProvider) callCount(match string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.prompts {
		if strings.Contains(p, match) {
			n++
		}
	}
	return n
}

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
	response string
}

func (f *flakyProvider) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("transient failure")
	}
	return f.response, nil
}
