package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// ReadmePath is the README read by the about command, relative to the working directory
const ReadmePath = "./README.md"

// About holds project metadata
type About struct {
	Name        string
	Description string
	Version     string
	Repository  string
	Readme      string
}

// AboutService assembles project metadata and the local README
type AboutService struct {
	store ports.DocumentStore
}

// NewAboutService creates a new about service
func NewAboutService(store ports.DocumentStore) *AboutService {
	return &AboutService{store: store}
}

// Execute fills in the README for the given metadata
func (s *AboutService) Execute(ctx context.Context, meta About) (*About, error) {
	readme, err := s.store.Read(ctx, ReadmePath)
	if err != nil {
		return nil, fmt.Errorf("couldn't load README: %w", err)
	}
	meta.Readme = readme
	return &meta, nil
}
