// Copyright 2025 Dachico Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mock provides a test double for translate.Provider.
package mock

import (
	"context"
	"sync"

	"github.com/dachico/clausematch/translate"
)

// MockProvider is a test double for translate.Provider.
type MockProvider struct {
	mu sync.Mutex

	// TranslateTextFunc is called by TranslateText if set.
	// If nil, uses the Responses table and falls back to echoing input.
	TranslateTextFunc func(ctx context.Context, text string) (string, error)

	// Responses maps input text to a canned translation.
	Responses map[string]string

	callCount int
}

var _ translate.Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with default echo behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockProvider() *MockProvider {
	return &MockProvider{Responses: make(map[string]string)}
}

// TranslateText returns the canned response for text, or echoes the input.
func (m *MockProvider) TranslateText(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.TranslateTextFunc
	canned, ok := m.Responses[text]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}
	if ok {
		return canned, nil
	}
	return text, nil
}

// CallCount returns the number of times TranslateText was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom behavior.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.TranslateTextFunc = nil
	m.Responses = make(map[string]string)
}

// Close is a no-op for mock provider.
func (m *MockProvider) Close() error {
	return nil
}
