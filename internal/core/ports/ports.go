package ports

import (
	"context"
)

// Requester defines the port for a single HTTP round-trip against a hastebin server
type Requester interface {
	// Request issues a GET when body is empty and a POST with body otherwise.
	// It returns the full response body regardless of status code.
	Request(ctx context.Context, url string, body string) (string, error)
}

// DocumentStore defines the port for local document file operations
type DocumentStore interface {
	// Read returns the entire text content of the file at path
	Read(ctx context.Context, path string) (string, error)

	// Write creates or truncates the file at path and writes content to it
	Write(ctx context.Context, path string, content string) error
}

// Clipboard defines the port for copying text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
