package fs_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	textRunes = []rune{'a', 'Z', '0', ' ', ' ', '\n', '\r', '"', '\'', ',', '#', ':', '-', '\\', 'é', 'ß', '中', '🙂'}
	wordRunes = []rune{'a', 'Z', '0', '"', '\'', ',', '#', ':', '-', '_', 'é', '中', '🙂'}

	genWord = rapid.StringOfN(rapid.SampledFrom(wordRunes), 1, 12, -1)
	genBody = rapid.StringOfN(rapid.SampledFrom(textRunes), 0, 40, -1)
	genTag  = rapid.OneOf(rapid.Just(""), genWord)
)

func TestStore_RoundTripProperty(t *testing.T) {
	for ext := range fs.DefaultSerializers() {
		t.Run(ext, func(t *testing.T) {
			store := fs.NewStore(fs.Config{Path: filepath.Join(t.TempDir(), "book"+ext)})

			rapid.Check(t, func(rt *rapid.T) {
				count := rapid.IntRange(0, 10).Draw(rt, "count")
				want := make([]core.Note, 0, count)
				for i := range count {
					n, err := core.NewNote(
						fmt.Sprintf("%s-%d", genWord.Draw(rt, "name"), i),
						"x"+genBody.Draw(rt, "text"),
						genTag.Draw(rt, "tag"),
					)
					if err != nil {
						rt.Fatalf("new note: %v", err)
					}
					want = append(want, n)
				}

				if err := store.Save(context.Background(), want); err != nil {
					rt.Fatalf("save: %v", err)
				}
				got, err := store.Load(context.Background())
				if err != nil {
					rt.Fatalf("load: %v", err)
				}
				if len(want) == 0 && len(got) == 0 {
					return
				}
				if !assert.ObjectsAreEqual(want, got) {
					rt.Fatalf("round trip mismatch:\nwant %q\ngot  %q", want, got)
				}
			})
		})
	}
}

func TestStore_SaveIsLossless(t *testing.T) {
	ctx := context.Background()

	for ext := range fs.DefaultSerializers() {
		t.Run(ext+" Invalid UTF-8 Refused", func(t *testing.T) {
			store, _ := setupStore(t, "book"+ext)

			err := store.Save(ctx, []core.Note{{Name: "coffee", Text: "caf\xe9 latte"}})
			assert.ErrorIs(t, err, core.ErrInvalidRecord)
		})

		t.Run(ext+" CRLF", func(t *testing.T) {
			store, _ := setupStore(t, "book"+ext)
			notes := []core.Note{{Name: "lines", Text: "line one\r\nline two"}}

			err := store.Save(ctx, notes)
			if ext == ".csv" {
				assert.Error(t, err, "csv cannot keep \\r\\n")
				return
			}
			require.NoError(t, err)

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, notes, got)
		})
	}
}
