package core

import "context"

// Storage defines the contract for persisting a whole book.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism (single file, database, remote object).
type Storage interface {
	// Load returns every persisted note in stored order.
	// A missing backing store is not an error: it yields no notes.
	// Content that cannot be parsed must be reported as ErrCorruptStorage.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the persisted contents with notes.
	// Implementations should not leave a partially written store behind.
	Save(ctx context.Context, notes []Note) error
}

// Locator is implemented by storages that can describe where they persist data.
type Locator interface {
	Location() string
}
