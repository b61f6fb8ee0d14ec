package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
)

// RecordedRequest captures one call made to MockRequester
type RecordedRequest struct {
	URL  string
	Body string
}

// MockRequester is an in-memory hastebin server implementing ports.Requester
type MockRequester struct {
	mu        sync.Mutex
	documents map[string]string
	requests  []RecordedRequest
	nextKey   int

	// Err, when set, is returned by every call
	Err error
	// Responses overrides the body returned for a specific URL
	Responses map[string]string
}

// NewMockRequester creates a new mock requester with no stored documents
func NewMockRequester() *MockRequester {
	return &MockRequester{
		documents: make(map[string]string),
		Responses: make(map[string]string),
	}
}

// Seed stores a document under origin and key
func (m *MockRequester) Seed(origin, key, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[domain.Origin(origin).RawURL(key)] = content
}

// Request serves GET {origin}/raw/{key} and POST {origin}/documents
func (m *MockRequester) Request(ctx context.Context, url string, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, RecordedRequest{URL: url, Body: body})

	if m.Err != nil {
		return "", m.Err
	}
	if resp, ok := m.Responses[url]; ok {
		return resp, nil
	}

	if body == "" {
		content, ok := m.documents[url]
		if !ok {
			return domain.NotFoundBody, nil
		}
		return content, nil
	}

	origin, ok := strings.CutSuffix(url, "/documents")
	if !ok {
		return `{"message":"Not found."}`, nil
	}

	m.nextKey++
	key := fmt.Sprintf("key%d", m.nextKey)
	m.documents[domain.Origin(origin).RawURL(key)] = body
	return fmt.Sprintf(`{"key":%q}`, key), nil
}

// Requests returns every call made so far
func (m *MockRequester) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}
