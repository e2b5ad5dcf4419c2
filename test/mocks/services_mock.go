// Package mocks provides test doubles shared by integration tests.
package mocks

import (
	"context"
	"strings"
	"sync"
)

// MockTextGenerator stands in for the Gemini client. It answers title
// prompts and summary prompts with fixed Japanese text and records every
// prompt it receives. Safe for concurrent use.
type MockTextGenerator struct {
	mu      sync.Mutex
	prompts []string

	// Err, when set, is returned for every generation call.
	Err error
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if strings.Contains(prompt, "コピーライター") {
		return "テスト用のタイトル", nil
	}
	return "テスト用の要約です。", nil
}

// Prompts returns a copy of every prompt seen so far.
func (m *MockTextGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
