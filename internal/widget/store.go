package widget

import (
	"fmt"
	"strings"
)

// ListStore is an append-only ordered collection of item strings. It is
// owned by a single widget instance and mutated only from the event loop,
// so it carries no locking. Invariant: every stored member went through
// Sanitize exactly once, on the way in.
type ListStore struct {
	items []string
}

func NewListStore() *ListStore {
	return &ListStore{}
}

// Append sanitizes and stores item, preserving insertion order. Items whose
// trimmed value is empty are rejected; duplicates are allowed.
func (s *ListStore) Append(item string) error {
	if strings.TrimSpace(item) == "" {
		return fmt.Errorf("append blank item: %w", ErrValidation)
	}
	s.items = append(s.items, Sanitize(item))
	return nil
}

// Snapshot returns the current items in order. The result is decoupled from
// internal storage; callers may mutate or shuffle it freely.
func (s *ListStore) Snapshot() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ListStore) Len() int {
	return len(s.items)
}
