package core

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UntaggedLabel is rendered in place of a tag for notes without one.
const UntaggedLabel = "untagged"

// Note is the central entity of the domain.
// It represents a short piece of text identified by a unique Name.
// An empty Tag means the note is untagged.
type Note struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
	Tag  string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// NewNote builds a validated Note.
// Surrounding whitespace is trimmed from every field and line endings in the text become \n.
func NewNote(name, text, tag string) (Note, error) {
	n := Note{
		Name: strings.TrimSpace(name),
		Text: normalizeText(text),
		Tag:  strings.TrimSpace(tag),
	}
	if err := n.Validate(); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Validate checks the invariants of a note.
// Names and tags are single tokens because the command surface splits input on whitespace.
func (n Note) Validate() error {
	if err := validateName(n.Name); err != nil {
		return err
	}
	if err := validateText(n.Text); err != nil {
		return err
	}
	return validateTag(n.Tag)
}

// IsTagged reports whether the note carries a tag.
func (n Note) IsTagged() bool {
	return n.Tag != ""
}

// String renders the note for display.
func (n Note) String() string {
	label := UntaggedLabel
	if n.IsTagged() {
		label = "#" + n.Tag
	}
	return fmt.Sprintf("%s: %s [%s]", n.Name, n.Text, label)
}

// normalizeText trims text and converts \r\n and lone \r line endings to \n.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimSpace(strings.ReplaceAll(text, "\r", "\n"))
}

func validateUTF8(field, value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrInvalidRecord, field, value)
	}
	return nil
}

func validateName(name string) error {
	if err := validateUTF8("name", name); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidRecord)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: name %q cannot contain whitespace", ErrInvalidRecord, name)
	}
	return nil
}

func validateText(text string) error {
	if err := validateUTF8("text", text); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text cannot be empty", ErrInvalidRecord)
	}
	return nil
}

func validateTag(tag string) error {
	if err := validateUTF8("tag", tag); err != nil {
		return err
	}
	if strings.ContainsFunc(tag, unicode.IsSpace) {
		return fmt.Errorf("%w: tag %q cannot contain whitespace", ErrInvalidRecord, tag)
	}
	return nil
}
