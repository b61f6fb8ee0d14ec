package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
)

// MockDocumentStore is an in-memory implementation of ports.DocumentStore
type MockDocumentStore struct {
	mu    sync.RWMutex
	files map[string]string

	// WriteErr, when set, is returned by Write
	WriteErr error
}

// NewMockDocumentStore creates an empty mock store
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		files: make(map[string]string),
	}
}

// Put stores a file without going through Write
func (m *MockDocumentStore) Put(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
}

// Read returns the stored content for path
func (m *MockDocumentStore) Read(ctx context.Context, path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[path]
	if !ok {
		return "", domain.Wrap(domain.KindLocalIO, "couldn't read file", errors.New("file not found: "+path))
	}
	return content, nil
}

// Write stores content at path
func (m *MockDocumentStore) Write(ctx context.Context, path string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path] = content
	return nil
}

// Get returns the stored content and whether it exists
func (m *MockDocumentStore) Get(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[path]
	return content, ok
}
