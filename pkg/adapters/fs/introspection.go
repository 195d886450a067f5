package fs

import (
	"slices"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path        string   `json:"path"`
	Format      string   `json:"format"`
	Serializers []string `json:"serializers"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	serializers := make([]string, 0, len(s.serializers))
	for ext := range s.serializers {
		serializers = append(serializers, ext)
	}
	slices.Sort(serializers)

	return StoreState{
		Path:        s.Path,
		Format:      s.format,
		Serializers: serializers,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
