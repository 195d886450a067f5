package core

import "errors"

// Common errors.
var (
	// ErrInvalidRecord is returned when a note fails validation (empty name or text).
	ErrInvalidRecord = errors.New("invalid note")

	// ErrNotFound is returned when an operation references a name absent from the book.
	ErrNotFound = errors.New("note not found")

	// ErrDuplicateName is returned when an add or rename would collide with an existing name.
	ErrDuplicateName = errors.New("note name already exists")

	// ErrCorruptStorage is returned when the persisted file exists but cannot be parsed.
	ErrCorruptStorage = errors.New("corrupt storage")

	// ErrArgument is returned by command layers when too few or malformed tokens were given.
	ErrArgument = errors.New("invalid arguments")
)
