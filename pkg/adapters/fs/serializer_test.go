package fs

import (
	"testing"

	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializers(t *testing.T) {
	notes := []core.Note{
		{Name: "groceries", Text: "milk, eggs \"free range\" bread", Tag: "home"},
		{Name: "todo", Text: "finish report\nthen call client"},
		{Name: "yaml-ish", Text: "key: value # not a comment", Tag: "work"},
	}

	serializers := DefaultSerializers()

	for _, ext := range []string{".json", ".yaml", ".yml", ".csv"} {
		t.Run(ext, func(t *testing.T) {
			s := serializers[ext]

			data, err := s.Encode(notes)
			require.NoError(t, err)

			parsed, err := s.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, notes, parsed)
		})

		t.Run(ext+" Empty Book", func(t *testing.T) {
			s := serializers[ext]

			data, err := s.Encode(nil)
			require.NoError(t, err)

			parsed, err := s.Decode(data)
			require.NoError(t, err)
			assert.Empty(t, parsed)
		})

		t.Run(ext+" Empty File", func(t *testing.T) {
			parsed, err := serializers[ext].Decode(nil)
			require.NoError(t, err)
			assert.Empty(t, parsed)
		})
	}
}

func TestSerializers_RejectMalformed(t *testing.T) {
	cases := map[string]struct {
		s    Serializer
		data string
	}{
		"json syntax":        {NewJSONSerializer(), `{"version": 1, "notes": [`},
		"json wrong version": {NewJSONSerializer(), `{"version": 99, "notes": []}`},
		"json no envelope":   {NewJSONSerializer(), `[{"name": "a", "text": "b"}]`},
		"json unknown field": {NewJSONSerializer(), `{"version": 1, "notes": [], "extra": true}`},
		"yaml syntax":        {NewYAMLSerializer(), "version: 1\nnotes: [\n"},
		"yaml unknown field": {NewYAMLSerializer(), "version: 1\nnotes:\n  - name: a\n    text: b\n    color: red\n"},
		"yaml wrong version": {NewYAMLSerializer(), "notes: []\n"},
		"csv header":         {NewCSVSerializer(), "title,body\nx,y\n"},
		"csv short row":      {NewCSVSerializer(), "name,text,tag\nx,y\n"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.s.Decode([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestCSVSerializer_RefusesCRLF(t *testing.T) {
	_, err := NewCSVSerializer().Encode([]core.Note{{Name: "x", Text: "line one\r\nline two"}})
	assert.ErrorContains(t, err, "line endings")

	data, err := NewCSVSerializer().Encode([]core.Note{{Name: "x", Text: "line one\nline two\r"}})
	require.NoError(t, err)
	parsed, err := NewCSVSerializer().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\r", parsed[0].Text)
}

func TestSerializerFor(t *testing.T) {
	registry := DefaultSerializers()

	assert.IsType(t, &JSONSerializer{}, SerializerFor("notes.json", registry))
	assert.IsType(t, &YAMLSerializer{}, SerializerFor("dir/notes.YAML", registry))
	assert.IsType(t, &CSVSerializer{}, SerializerFor("notes.csv", registry))
	assert.IsType(t, &JSONSerializer{}, SerializerFor("notes.db", registry))
	assert.IsType(t, &JSONSerializer{}, SerializerFor("notes", registry))
}
