package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultFilename is the book file used when no path is configured.
const DefaultFilename = "notes.json"

// Store implements core.Storage using a single file on the local filesystem.
type Store struct {
	Path        string
	format      string
	serializer  Serializer
	serializers map[string]Serializer
	logger      *slog.Logger
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path        string
	Logger      *slog.Logger
	Serializers map[string]Serializer // Extension -> Serializer overrides, merged over DefaultSerializers.
}

// NewStore creates a new file-backed store. The format follows the file extension.
func NewStore(config Config) *Store {
	path := config.Path
	if path == "" {
		path = DefaultFilename
	}

	registry := DefaultSerializers()
	for ext, s := range config.Serializers {
		registry[ext] = s
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	format := strings.ToLower(filepath.Ext(path))
	if _, ok := registry[format]; !ok {
		format = ".json"
	}

	return &Store{
		Path:        path,
		format:      format,
		serializer:  SerializerFor(path, registry),
		serializers: registry,
		logger:      logger,
	}
}

// Location returns the path of the book file.
func (s *Store) Location() string {
	return s.Path
}

// Load reads and decodes the book file.
// A missing file yields an empty book. Undecodable content is core.ErrCorruptStorage.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("book file not found, starting empty", "path", s.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	notes, err := s.serializer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrCorruptStorage, s.Path, err)
	}
	return notes, nil
}

// Save encodes notes and atomically replaces the book file.
// Invalid notes are refused so that what is written always reads back the same.
// Missing parent directories are created.
func (s *Store) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, n := range notes {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("refusing to save %s: %w", s.Path, err)
		}
	}

	data, err := s.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.Path, err)
	}

	if err := writeFileAtomic(s.Path, data, FileMode); err != nil {
		return err
	}

	s.logger.Debug("book file written", "path", s.Path, "notes", len(notes), "bytes", len(data))
	return nil
}
