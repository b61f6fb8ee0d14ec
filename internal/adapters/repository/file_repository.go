package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// FileRepository reads and writes documents on the local filesystem.
// Relative paths are resolved against baseDir when it is set.
type FileRepository struct {
	baseDir string
}

// NewFileRepository creates a new file-based document store
func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{
		baseDir: baseDir,
	}
}

// Ensure it implements the interface
var _ ports.DocumentStore = (*FileRepository)(nil)

// Read returns the entire file content as text
func (r *FileRepository) Read(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(r.resolve(path))
	if err != nil {
		return "", domain.Wrap(domain.KindLocalIO, "couldn't read file", err)
	}

	if !utf8.Valid(data) {
		return "", domain.Wrap(domain.KindLocalIO, "couldn't read file", errors.New(path+" is not valid UTF-8 text"))
	}

	return string(data), nil
}

// Write creates or truncates the file at path
func (r *FileRepository) Write(ctx context.Context, path string, content string) error {
	if err := os.WriteFile(r.resolve(path), []byte(content), 0644); err != nil {
		return domain.Wrap(domain.KindLocalIO, "couldn't create file", err)
	}
	return nil
}

func (r *FileRepository) resolve(path string) string {
	if r.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.baseDir, path)
}
