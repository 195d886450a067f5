package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

// The handlers below are shared by the cobra commands and the interactive shell.
// Each performs one book operation and returns the message to show the user.

func addNote(ctx context.Context, svc *core.Service, name, text, tag string) (string, error) {
	n, err := core.NewNote(name, text, tag)
	if err != nil {
		return "", err
	}
	if err := svc.Add(ctx, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' added.", n.Name), nil
}

func deleteNote(ctx context.Context, svc *core.Service, name string) (string, error) {
	removed, err := svc.Delete(ctx, name)
	if err != nil {
		return "", err
	}
	if !removed {
		return fmt.Sprintf("Note '%s' not found.", name), nil
	}
	return fmt.Sprintf("Note '%s' deleted.", name), nil
}

func renameNote(ctx context.Context, svc *core.Service, oldName, newName string) (string, error) {
	if err := svc.Rename(ctx, oldName, newName); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' renamed to '%s'.", oldName, newName), nil
}

func editNoteText(ctx context.Context, svc *core.Service, name, text string) (string, error) {
	if err := svc.EditText(ctx, name, text); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' updated.", name), nil
}

func editNoteTag(ctx context.Context, svc *core.Service, name, tag string) (string, error) {
	if err := svc.EditTag(ctx, name, tag); err != nil {
		return "", err
	}
	if tag == "" {
		return fmt.Sprintf("Note '%s' untagged.", name), nil
	}
	return fmt.Sprintf("Note '%s' tagged '%s'.", name, tag), nil
}

// renderNotes prints one note per line, or empty when there are none.
func renderNotes(notes []core.Note, empty string) string {
	if len(notes) == 0 {
		return empty
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, n.String())
	}
	return strings.Join(lines, "\n")
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return "No tags in use."
	}
	return strings.Join(tags, "\n")
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// describeError maps core errors to user-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, core.ErrCorruptStorage):
		return fmt.Sprintf("Storage is corrupt, changes are not saved: %v. Re-run with --force to overwrite it.", err)
	case errors.Is(err, core.ErrArgument):
		return fmt.Sprintf("Not enough or malformed arguments: %v. Type 'help' for usage.", err)
	case errors.Is(err, core.ErrInvalidRecord):
		return fmt.Sprintf("Invalid note: %v", err)
	case errors.Is(err, core.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	case errors.Is(err, core.ErrDuplicateName):
		return fmt.Sprintf("Name already taken: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
