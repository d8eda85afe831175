// Package backend selects and constructs a storage repository.
package backend

import (
	"fmt"
	"log/slog"

	"expenses/internal/storage"
)

// Type names a storage backend.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the repository and an optional cleanup function.
type Result struct {
	Repository storage.Repository
	Cleanup    CleanupFunc
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// File backend
	FilePath string

	// SQLite backend
	SQLiteDBPath string
}

// Factory creates repositories based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the repository for the configured backend type.
func (f *Factory) Create(cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Repository: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Repository: storage.NewMemoryRepository()}, nil

	default:
		repo := storage.NewFileRepository(cfg.FilePath)
		f.logger.Info("Initialized file backend", "path", repo.Path())
		return &Result{Repository: repo}, nil
	}
}
