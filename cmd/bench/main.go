package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	format := flag.String("format", ".json", "Book file extension (.json, .yaml or .csv)")
	keep := flag.Bool("keep", false, "Keep the benchmark book after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notes_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	path := filepath.Join(benchDir, "book"+*format)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	// Generation writes the whole book once, bypassing per-add saves.
	fmt.Printf("Generating %d notes in %s...\n", *count, path)
	startGen := time.Now()
	generated := make([]core.Note, 0, *count)
	for i := 0; i < *count; i++ {
		generated = append(generated, core.Note{
			Name: fmt.Sprintf("note-%d", i),
			Text: fmt.Sprintf("benchmark note number %d", i),
			Tag:  []string{"", "bench", "test"}[i%3],
		})
	}
	store := fs.NewStore(fs.Config{Path: path, Logger: logger})
	if err := store.Save(ctx, generated); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	svc, err := notes.New(path, notes.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	startLoad := time.Now()
	if err := svc.Load(ctx); err != nil {
		panic(err)
	}
	loadTook := time.Since(startLoad)

	startAdd := time.Now()
	if err := svc.Add(ctx, core.Note{Name: "extra", Text: "one more"}); err != nil {
		panic(err)
	}
	addTook := time.Since(startAdd)

	startSearch := time.Now()
	found := svc.SearchByText("number 4")
	searchTook := time.Since(startSearch)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %s):\n", *count, *format)
	fmt.Printf("  Load:   %v (Items: %d)\n", loadTook, len(svc.List()))
	fmt.Printf("  Add:    %v (full rewrite)\n", addTook)
	fmt.Printf("  Search: %v (Hits: %d)\n", searchTook, len(found))
	fmt.Printf("--------------------------------------------------\n")
}
