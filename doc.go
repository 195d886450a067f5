// Package notes is the composition root for the notes application.
//
// It connects the note book domain (pkg/core) with the file storage adapter
// (pkg/adapters/fs). A book is an insertion-ordered set of short notes, each
// with a unique name, a text body and an optional tag. Every change is
// written back to a single file (JSON, YAML or CSV, chosen by extension)
// with an atomic replace.
//
// Usage:
//
//	svc, err := notes.New("notes.json", notes.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	if err := svc.Load(ctx); err != nil {
//		return err
//	}
//
//	n, _ := notes.NewNote("groceries", "milk eggs bread", "home")
//	err = svc.Add(ctx, n)
//
//	for _, n := range svc.SearchByTag("home") {
//		fmt.Println(n)
//	}
package notes
