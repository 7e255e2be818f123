package mocks

import (
	"context"
	"sync"

	"github.com/planwise/planwise-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Reply string
	Err   error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string
	}
}

var _ generation.TextGenerator = (*MockTextGenerator)(nil)

// Generate implements the generation.TextGenerator interface
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Reply, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockTextGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the most recent prompt, or "" if Generate was never called.
func (m *MockTextGenerator) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// NewMockTextGeneratorWithReply creates a MockTextGenerator that returns reply
func NewMockTextGeneratorWithReply(reply string) *MockTextGenerator {
	return &MockTextGenerator{Reply: reply}
}

// NewMockTextGeneratorWithError creates a MockTextGenerator that returns err
func NewMockTextGeneratorWithError(err error) *MockTextGenerator {
	return &MockTextGenerator{Err: err}
}

// MockTextGeneratorUnavailable simulates an unreachable model
func MockTextGeneratorUnavailable() *MockTextGenerator {
	return &MockTextGenerator{Err: generation.ErrServiceUnavailable}
}

// Reset resets the call tracking state
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
}
