package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service handles the business logic for a note book.
// It owns one Book and persists it to Storage after every successful mutation.
type Service struct {
	book    *Book
	storage Storage
	logger  *slog.Logger

	// guard blocks writes after Load found corrupt storage,
	// so the damaged file is not silently replaced by an empty book.
	guard error
}

// NewService creates a new Service. A nil logger falls back to slog.Default().
func NewService(storage Storage, logger *slog.Logger, opts ...BookOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		book:    NewBook(opts...),
		storage: storage,
		logger:  logger,
	}
}

// Load populates the book from storage, replacing the in-memory state.
//
// If the storage is corrupt the book is left unchanged, ErrCorruptStorage is
// returned and further writes are refused until Unguard is called.
func (s *Service) Load(ctx context.Context) error {
	if err := s.book.Load(ctx, s.storage); err != nil {
		if errors.Is(err, ErrCorruptStorage) {
			s.guard = fmt.Errorf("refusing to overwrite %s: %w", s.location(), err)
		}
		return err
	}
	s.guard = nil
	s.logger.Debug("note book loaded", "location", s.location(), "notes", s.book.Len())
	return nil
}

// Unguard allows writes after a corrupt load. The next save replaces the corrupt data.
func (s *Service) Unguard() {
	if s.guard != nil {
		s.logger.Warn("overwriting corrupt storage", "location", s.location())
	}
	s.guard = nil
}

// Add stores a new note.
func (s *Service) Add(ctx context.Context, n Note) error {
	return s.mutate(ctx, "add", func(b *Book) error {
		return b.Add(n)
	})
}

// Delete removes a note and reports whether it existed.
// A missing name is not an error and writes nothing, even while writes are refused.
func (s *Service) Delete(ctx context.Context, name string) (bool, error) {
	if _, err := s.book.Get(name); err != nil {
		return false, nil
	}
	err := s.mutate(ctx, "delete", func(b *Book) error {
		b.Delete(name)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Rename re-keys a note.
func (s *Service) Rename(ctx context.Context, oldName, newName string) error {
	return s.mutate(ctx, "rename", func(b *Book) error {
		return b.Rename(oldName, newName)
	})
}

// EditText replaces the body of a note.
func (s *Service) EditText(ctx context.Context, name, text string) error {
	return s.mutate(ctx, "edit_text", func(b *Book) error {
		return b.EditText(name, text)
	})
}

// EditTag replaces the tag of a note. An empty tag untags it.
func (s *Service) EditTag(ctx context.Context, name, tag string) error {
	return s.mutate(ctx, "edit_tag", func(b *Book) error {
		return b.EditTag(name, tag)
	})
}

// Get retrieves a note by name.
func (s *Service) Get(name string) (Note, error) {
	return s.book.Get(name)
}

// List returns every note in insertion order.
func (s *Service) List() []Note {
	return s.book.ListAll()
}

// SearchByName returns notes whose name contains keyword.
func (s *Service) SearchByName(keyword string) []Note {
	return s.book.SearchByName(keyword)
}

// SearchByText returns notes whose text contains keyword.
func (s *Service) SearchByText(keyword string) []Note {
	return s.book.SearchByText(keyword)
}

// SearchByTag returns notes tagged exactly tag.
func (s *Service) SearchByTag(tag string) []Note {
	return s.book.SearchByTag(tag)
}

// Match returns notes whose name matches a glob pattern.
func (s *Service) Match(pattern string) ([]Note, error) {
	return s.book.MatchName(pattern)
}

// Tags returns the distinct tags in use.
func (s *Service) Tags() []string {
	return s.book.Tags()
}

func (s *Service) mutate(ctx context.Context, op string, fn func(*Book) error) error {
	if s.guard != nil {
		return s.guard
	}

	order, records := s.book.snapshot()
	if err := fn(s.book); err != nil {
		return err
	}

	if err := s.book.Save(ctx, s.storage); err != nil {
		s.book.restore(order, records)
		return fmt.Errorf("failed to persist %s: %w", op, err)
	}

	s.logger.Debug("note book saved", "op", op, "location", s.location(), "notes", s.book.Len())
	return nil
}

func (s *Service) location() string {
	if l, ok := s.storage.(Locator); ok {
		return l.Location()
	}
	return fmt.Sprintf("%T", s.storage)
}
