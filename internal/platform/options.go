package platform

import (
	"log/slog"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// options holds the internal configuration for the notes service.
type options struct {
	storage       core.Storage
	logger        *slog.Logger
	ignoreCase    bool
	searchParents bool
	serializers   map[string]fs.Serializer
}

// Option defines a functional option for configuring the notes service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		serializers: make(map[string]fs.Serializer),
	}
}

// WithLogger sets the logger for the service and its storage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage allows injecting a custom storage (e.g. mock, remote).
// If provided, the path argument and the filesystem store are ignored.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithIgnoreCase makes name and text searches case-insensitive.
func WithIgnoreCase(enabled bool) Option {
	return func(o *options) {
		o.ignoreCase = enabled
	}
}

// WithSearchParents makes a relative book path resolve against the nearest
// parent directory that already holds a file of that name.
// Useful when one book is shared by a project tree.
func WithSearchParents(enabled bool) Option {
	return func(o *options) {
		o.searchParents = enabled
	}
}

// WithSerializer registers a serializer for a file extension (e.g. ".toml").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
