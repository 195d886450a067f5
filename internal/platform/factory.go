package platform

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// New wires a note book service backed by the file at path.
// The book is not loaded yet; call Load on the returned service.
//
//	svc, err := notes.New("notes.json", notes.WithIgnoreCase(true))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	storage := o.storage
	if storage == nil {
		resolved, err := ResolvePath(path, o.searchParents)
		if err != nil {
			return nil, err
		}
		storage = fs.NewStore(fs.Config{
			Path:        resolved,
			Logger:      logger,
			Serializers: o.serializers,
		})
	}

	return core.NewService(storage, logger, core.WithIgnoreCase(o.ignoreCase)), nil
}

// ResolvePath turns the configured book path into the one to open.
// An empty path means fs.DefaultFilename in the working directory.
func ResolvePath(path string, searchParents bool) (string, error) {
	if path == "" {
		path = fs.DefaultFilename
	}
	if !searchParents || filepath.IsAbs(path) {
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if dir, err := FindRoot(wd, path); err == nil {
		return filepath.Join(dir, path), nil
	}
	return path, nil
}
