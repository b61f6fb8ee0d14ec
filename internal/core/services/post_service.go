package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// PostService handles creating documents from local files
type PostService struct {
	requester     ports.Requester
	store         ports.DocumentStore
	defaultServer string
}

// NewPostService creates a new document creation service. An empty
// defaultServer falls back to domain.DefaultServer.
func NewPostService(requester ports.Requester, store ports.DocumentStore, defaultServer string) *PostService {
	if defaultServer == "" {
		defaultServer = domain.DefaultServer
	}
	return &PostService{
		requester:     requester,
		store:         store,
		defaultServer: defaultServer,
	}
}

// PostRequest holds the positional arguments of `post <input-path> [server] [raw]`
type PostRequest struct {
	Args []string
	// Raw forces raw URL output regardless of the positional flag
	Raw bool
}

// PostResponse represents the created document
type PostResponse struct {
	Server domain.Origin
	Key    string
	Raw    bool
	URL    string
}

// Execute uploads the input file and returns the new document's URL
func (s *PostService) Execute(ctx context.Context, req PostRequest) (*PostResponse, error) {
	if len(req.Args) == 0 {
		return nil, domain.NewUsageError("Expected at least 1 argument. (input)")
	}

	server := domain.Origin(s.defaultServer)
	if len(req.Args) > 1 {
		server = domain.Origin(req.Args[1])
	}

	content, err := s.store.Read(ctx, req.Args[0])
	if err != nil {
		return nil, err
	}

	body, err := s.requester.Request(ctx, server.DocumentsURL(), content)
	if err != nil {
		return nil, fmt.Errorf("couldn't post document: %w", err)
	}

	result, err := domain.DecodePostResult(body)
	if err != nil {
		return nil, err
	}

	// Any third argument selects raw output, whatever its text.
	raw := req.Raw || len(req.Args) > 2

	return &PostResponse{
		Server: server,
		Key:    result.Key,
		Raw:    raw,
		URL:    server.DocumentURL(result.Key, raw),
	}, nil
}
