package widget

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names an outward state-change broadcast.
type EventKind string

const (
	EventItemAdded    EventKind = "item-added"
	EventItemSelected EventKind = "item-selected"
)

// Event is a fire-and-forget domain event. Item carries the changed or
// selected item; Items is a snapshot of the full list at emission time.
// Similar is set on item-added events when the new item nearly duplicates
// an earlier one (the stored spelling of that earlier item).
type Event struct {
	ID      uuid.UUID
	Kind    EventKind
	Item    string
	Items   []string
	Total   int
	Similar string
	At      time.Time
}

// Listener receives domain events. Listeners run synchronously, in
// registration order, and their return values (there are none) are never
// consumed by the core.
type Listener func(Event)
