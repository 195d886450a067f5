package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/notes/pkg/core"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written into every JSON and YAML book file.
const FormatVersion = 1

// Serializer defines how to read and write a whole book in a specific file format.
type Serializer interface {
	// Decode parses data into notes, in stored order.
	Decode(data []byte) ([]core.Note, error)
	// Encode converts notes to bytes.
	Encode(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
		".csv":  NewCSVSerializer(),
	}
}

// SerializerFor picks the serializer matching the extension of path.
// Unknown extensions fall back to JSON.
func SerializerFor(path string, registry map[string]Serializer) Serializer {
	if s, ok := registry[strings.ToLower(filepath.Ext(path))]; ok {
		return s
	}
	return NewJSONSerializer()
}

// document is the envelope stored by the JSON and YAML serializers.
type document struct {
	Version int         `json:"version" yaml:"version"`
	Notes   []core.Note `json:"notes" yaml:"notes"`
}

func (d document) check() error {
	if d.Version != FormatVersion {
		return fmt.Errorf("unsupported format version %d (want %d)", d.Version, FormatVersion)
	}
	return nil
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON book files.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Decode(data []byte) ([]core.Note, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc.Notes, nil
}

func (s *JSONSerializer) Encode(notes []core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(document{Version: FormatVersion, Notes: nonNil(notes)}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML book files.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Note, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc.Notes, nil
}

func (s *YAMLSerializer) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(document{Version: FormatVersion, Notes: nonNil(notes)}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

// csvHeader is the fixed column layout. An empty tag column means untagged.
var csvHeader = []string{"name", "text", "tag"}

// CSVSerializer handles reading and writing CSV book files, one note per row.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Decode(data []byte) ([]core.Note, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("unexpected csv header %q", header)
	}

	var notes []core.Note
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return notes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		notes = append(notes, core.Note{Name: row[0], Text: row[1], Tag: row[2]})
	}
}

func (s *CSVSerializer) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, n := range notes {
		// The csv reader folds \r\n inside quoted fields into \n.
		if strings.Contains(n.Text, "\r\n") {
			return nil, fmt.Errorf("note %q: csv cannot store \\r\\n line endings", n.Name)
		}
		if err := w.Write([]string{n.Name, n.Text, n.Tag}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// --- Helpers ---

// nonNil makes empty books encode as [] rather than null.
func nonNil(notes []core.Note) []core.Note {
	if notes == nil {
		return []core.Note{}
	}
	return notes
}
