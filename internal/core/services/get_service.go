package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// GetService handles retrieving documents from a hastebin server
type GetService struct {
	requester ports.Requester
	store     ports.DocumentStore
}

// NewGetService creates a new document retrieval service
func NewGetService(requester ports.Requester, store ports.DocumentStore) *GetService {
	return &GetService{
		requester: requester,
		store:     store,
	}
}

// GetRequest holds the positional arguments of `get <key-or-url> [server] [output-path]`
type GetRequest struct {
	Args []string
}

// GetResponse represents the outcome of a fetch
type GetResponse struct {
	Server  domain.Origin
	Key     string
	URL     string
	Content string
	// Found is false when the server answered with the not-found sentinel
	Found bool
	// OutputPath is the requested output file, empty when none was given
	OutputPath string
}

// Execute resolves the key argument and fetches the raw document
func (s *GetService) Execute(ctx context.Context, req GetRequest) (*GetResponse, error) {
	if len(req.Args) == 0 {
		return nil, domain.NewUsageError("Expected at least 1 argument. (key)")
	}

	var server string
	if len(req.Args) > 1 {
		server = req.Args[1]
	}

	res, err := domain.Resolve(req.Args[0], server)
	if err != nil {
		return nil, err
	}

	url := res.Server.RawURL(res.Key)
	body, err := s.requester.Request(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("couldn't get document: %w", err)
	}

	resp := &GetResponse{
		Server: res.Server,
		Key:    res.Key,
		URL:    url,
	}
	if domain.IsNotFound(body) {
		return resp, nil
	}

	resp.Found = true
	resp.Content = body
	resp.OutputPath = outputPathArg(req.Args, res.Embedded)
	return resp, nil
}

// Export writes fetched content to path
func (s *GetService) Export(ctx context.Context, path string, content string) error {
	if err := s.store.Write(ctx, path, content); err != nil {
		return fmt.Errorf("couldn't output document: %w", err)
	}
	return nil
}

// outputPathArg picks the output path slot. When the server is embedded in the
// key URL the server slot is skipped, so the path moves up by one.
func outputPathArg(args []string, embedded bool) string {
	idx := 2
	if embedded {
		idx = 1
	}
	if len(args) > idx {
		return args[idx]
	}
	return ""
}
