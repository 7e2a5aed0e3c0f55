package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phase is a toast's position in its visibility lifecycle.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseVisible
	PhaseFadingOut
	PhaseRemoved
)

// Timings configures the toast schedule. FadeInDelay is the pause before a
// posted toast becomes visible, DisplayDuration how long it stays fully
// visible, FadeOutDuration how long the fade runs before removal.
type Timings struct {
	FadeInDelay     time.Duration
	DisplayDuration time.Duration
	FadeOutDuration time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		FadeInDelay:     0,
		DisplayDuration: 4 * time.Second,
		FadeOutDuration: 300 * time.Millisecond,
	}
}

// Notification is one transient status message. Each Post creates an
// independent instance; overlapping toasts are legal and never deduplicated.
type Notification struct {
	ID      uuid.UUID
	Message string
	Phase   Phase
}

// Notifier owns the set of live toasts. It is a pure phase machine: it
// never sleeps or schedules anything itself. Post and Advance report the
// delay before the next transition is due, and the rendering surface turns
// that delay into a timer (tea.Tick in the TUI). A fade-out, once started,
// always runs to removal.
type Notifier struct {
	timings Timings
	active  map[uuid.UUID]*Notification
	order   []uuid.UUID
	pending []uuid.UUID
}

func NewNotifier(t Timings) *Notifier {
	return &Notifier{
		timings: t,
		active:  make(map[uuid.UUID]*Notification),
	}
}

// Post creates a hidden toast for message and returns it along with the
// delay before its first Advance is due.
func (n *Notifier) Post(message string) (Notification, time.Duration, error) {
	if strings.TrimSpace(message) == "" {
		return Notification{}, 0, fmt.Errorf("post blank notification: %w", ErrValidation)
	}
	toast := &Notification{ID: uuid.New(), Message: message, Phase: PhaseHidden}
	n.active[toast.ID] = toast
	n.order = append(n.order, toast.ID)
	n.pending = append(n.pending, toast.ID)
	return *toast, n.timings.FadeInDelay, nil
}

// TakePending drains toasts that have been posted but not yet handed to a
// scheduler, oldest first. Each toast is returned exactly once.
func (n *Notifier) TakePending() []Notification {
	out := make([]Notification, 0, len(n.pending))
	for _, id := range n.pending {
		if toast, ok := n.active[id]; ok {
			out = append(out, *toast)
		}
	}
	n.pending = nil
	return out
}

// Timings returns the configured schedule.
func (n *Notifier) Timings() Timings {
	return n.timings
}

// Advance moves the toast with the given id to its next phase and returns
// the updated toast plus the delay before the following Advance. A false
// third return means the id is unknown or already removed; once a toast
// reaches PhaseRemoved it is dropped and no further delay applies.
func (n *Notifier) Advance(id uuid.UUID) (Notification, time.Duration, bool) {
	toast, ok := n.active[id]
	if !ok {
		return Notification{}, 0, false
	}
	switch toast.Phase {
	case PhaseHidden:
		toast.Phase = PhaseVisible
		return *toast, n.timings.DisplayDuration, true
	case PhaseVisible:
		toast.Phase = PhaseFadingOut
		return *toast, n.timings.FadeOutDuration, true
	default:
		toast.Phase = PhaseRemoved
		delete(n.active, id)
		n.dropOrder(id)
		return *toast, 0, true
	}
}

// Active returns live toasts in post order, skipping still-hidden ones.
func (n *Notifier) Active() []Notification {
	out := make([]Notification, 0, len(n.order))
	for _, id := range n.order {
		toast, ok := n.active[id]
		if !ok || toast.Phase == PhaseHidden {
			continue
		}
		out = append(out, *toast)
	}
	return out
}

func (n *Notifier) dropOrder(id uuid.UUID) {
	for i, existing := range n.order {
		if existing == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			return
		}
	}
}
