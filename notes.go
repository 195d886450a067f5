package notes

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Service is a public alias for the note book service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring the note book.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage backend.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithIgnoreCase makes name and text searches case-insensitive.
func WithIgnoreCase(enabled bool) Option {
	return platform.WithIgnoreCase(enabled)
}

// WithSearchParents resolves a relative book path against the nearest parent holding it.
func WithSearchParents(enabled bool) Option {
	return platform.WithSearchParents(enabled)
}

// WithSerializer registers a serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a note book service backed by the file at path.
// Call Load on the result before use.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// NewNote builds a validated note.
func NewNote(name, text, tag string) (Note, error) {
	return core.NewNote(name, text, tag)
}
