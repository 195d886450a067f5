package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes       int    `json:"notes"`
	Location    string `json:"location"`
	Guarded     bool   `json:"guarded"`
	IgnoreCase  bool   `json:"ignore_case"`
	StorageType string `json:"storage_type"`
	Storage     any    `json:"storage,omitempty"`
}

// State implements introspection.Introspectable.
// Storage state is included when the storage is itself introspectable.
func (s *Service) State() any {
	state := ServiceState{
		Notes:       s.book.Len(),
		Location:    s.location(),
		Guarded:     s.guard != nil,
		IgnoreCase:  s.book.ignoreCase,
		StorageType: "unknown",
	}
	if comp, ok := s.storage.(introspection.Component); ok {
		state.StorageType = comp.ComponentType()
	}
	if intro, ok := s.storage.(introspection.Introspectable); ok {
		state.Storage = intro.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
