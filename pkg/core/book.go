package core

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Book is an insertion-ordered collection of notes keyed by name.
// It is not safe for concurrent use.
type Book struct {
	order      []string
	records    map[string]Note
	ignoreCase bool
}

// BookOption configures a Book.
type BookOption func(*Book)

// WithIgnoreCase makes name and text searches case-insensitive.
// Tag search always compares exactly.
func WithIgnoreCase(enabled bool) BookOption {
	return func(b *Book) {
		b.ignoreCase = enabled
	}
}

// NewBook creates an empty Book.
func NewBook(opts ...BookOption) *Book {
	b := &Book{records: make(map[string]Note)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of notes in the book.
func (b *Book) Len() int {
	return len(b.order)
}

// Add inserts n. It fails with ErrDuplicateName if the name is taken,
// leaving the existing note untouched.
func (b *Book) Add(n Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if _, ok := b.records[n.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
	}
	b.order = append(b.order, n.Name)
	b.records[n.Name] = n
	return nil
}

// Get returns a copy of the note stored under name.
func (b *Book) Get(name string) (Note, error) {
	n, ok := b.records[name]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return n, nil
}

// Delete removes the note stored under name and reports whether it existed.
func (b *Book) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(s string) bool { return s == name })
	return true
}

// Rename re-keys a note, keeping its text and tag.
// The renamed note moves to the end of the listing order.
func (b *Book) Rename(oldName, newName string) error {
	n, ok := b.records[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if err := validateName(newName); err != nil {
		return err
	}
	if _, taken := b.records[newName]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}

	b.Delete(oldName)
	n.Name = newName
	b.order = append(b.order, newName)
	b.records[newName] = n
	return nil
}

// EditText replaces the body of an existing note in place.
func (b *Book) EditText(name, text string) error {
	n, ok := b.records[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	text = normalizeText(text)
	if err := validateText(text); err != nil {
		return err
	}
	n.Text = text
	b.records[name] = n
	return nil
}

// EditTag replaces the tag of an existing note. An empty tag untags it.
func (b *Book) EditTag(name, tag string) error {
	n, ok := b.records[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	tag = strings.TrimSpace(tag)
	if err := validateTag(tag); err != nil {
		return err
	}
	n.Tag = tag
	b.records[name] = n
	return nil
}

// ListAll returns every note in insertion order.
// The result is never nil.
func (b *Book) ListAll() []Note {
	return b.filter(func(Note) bool { return true })
}

// SearchByName returns notes whose name contains keyword.
func (b *Book) SearchByName(keyword string) []Note {
	if keyword == "" {
		return []Note{}
	}
	return b.filter(func(n Note) bool { return b.contains(n.Name, keyword) })
}

// SearchByText returns notes whose text contains keyword.
func (b *Book) SearchByText(keyword string) []Note {
	if keyword == "" {
		return []Note{}
	}
	return b.filter(func(n Note) bool { return b.contains(n.Text, keyword) })
}

// SearchByTag returns notes whose tag equals tag exactly.
// Untagged notes never match.
func (b *Book) SearchByTag(tag string) []Note {
	if tag == "" {
		return []Note{}
	}
	return b.filter(func(n Note) bool { return n.Tag == tag })
}

// MatchName returns notes whose name matches a glob pattern
// such as "todo-*" or "work/**".
func (b *Book) MatchName(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrArgument, pattern)
	}
	return b.filter(func(n Note) bool {
		ok, _ := doublestar.Match(pattern, n.Name)
		return ok
	}), nil
}

// Tags returns the distinct tags in use, in the order they first appear.
func (b *Book) Tags() []string {
	tags := []string{}
	for _, name := range b.order {
		tag := b.records[name].Tag
		if tag != "" && !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Load replaces the contents of the book with what src holds.
// On failure the book is left unchanged.
func (b *Book) Load(ctx context.Context, src Storage) error {
	notes, err := src.Load(ctx)
	if err != nil {
		return err
	}

	fresh := NewBook()
	for i, n := range notes {
		if err := fresh.Add(n); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrCorruptStorage, i, err)
		}
	}

	b.order = fresh.order
	b.records = fresh.records
	return nil
}

// Save writes every note to dst in insertion order.
func (b *Book) Save(ctx context.Context, dst Storage) error {
	return dst.Save(ctx, b.ListAll())
}

func (b *Book) contains(field, keyword string) bool {
	if b.ignoreCase {
		return strings.Contains(strings.ToLower(field), strings.ToLower(keyword))
	}
	return strings.Contains(field, keyword)
}

func (b *Book) filter(keep func(Note) bool) []Note {
	out := make([]Note, 0, len(b.order))
	for _, name := range b.order {
		if n := b.records[name]; keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// snapshot captures the book state so a failed persist can be undone.
func (b *Book) snapshot() ([]string, map[string]Note) {
	return slices.Clone(b.order), maps.Clone(b.records)
}

func (b *Book) restore(order []string, records map[string]Note) {
	b.order = order
	b.records = records
}
