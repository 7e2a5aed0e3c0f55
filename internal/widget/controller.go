package widget

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Router interaction kinds understood by a bound controller.
const (
	KindSubmit = "submit"
	KindPick   = "pick"
)

// AddResult reports a successful AddItem. Everything else about the add
// (snapshot, near-duplicate hint, timestamp) rides on the item-added event.
type AddResult struct {
	Item  string
	Total int
}

// PickResult is the outcome of one pick: the selection, the eligible items
// it was drawn from, and when it happened. Produced fresh per pick and
// never retained by the core.
type PickResult struct {
	Selected string
	Items    []string
	At       time.Time
}

// Controller orchestrates the widget's two operations over the store, the
// shuffle engine and the notifier. Operations are atomic from the caller's
// perspective: within one call the sub-steps run sanitize, mutate or
// select, emit, notify, in that order, with no reentrancy.
type Controller struct {
	store     *ListStore
	notifier  *Notifier
	rng       *rand.Rand
	now       func() time.Time
	listeners []Listener
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for selection. Tests pass a seeded
// source; the default is time-seeded.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithClock overrides the timestamp source for emitted events.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(store *ListStore, notifier *Notifier, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers a listener for outward domain events.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// BindRouter attaches the controller's handlers to r under the fixed
// interaction kinds. A "submit" payload must be the raw input string; a
// "pick" payload is ignored.
func (c *Controller) BindRouter(r *Router) {
	r.Bind(KindSubmit, func(payload any) error {
		text, ok := payload.(string)
		if !ok {
			return fmt.Errorf("submit payload %T, want string: %w", payload, ErrInvalidArgument)
		}
		_, err := c.AddItem(text)
		return err
	})
	r.Bind(KindPick, func(any) error {
		_, err := c.PickItem()
		return err
	})
}

// AddItem trims and validates text, stores the sanitized item, emits an
// item-added event and posts the "has been added" toast. The rendering
// surface collects the toast through the notifier's pending queue.
func (c *Controller) AddItem(text string) (AddResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return AddResult{}, fmt.Errorf("add item: %w", ErrValidation)
	}
	if c.notifier == nil {
		return AddResult{}, fmt.Errorf("add item: notifier unavailable: %w", ErrState)
	}

	prior := c.store.Snapshot()
	if err := c.store.Append(trimmed); err != nil {
		return AddResult{}, fmt.Errorf("add item: %w", err)
	}
	stored := c.store.Snapshot()
	item := stored[len(stored)-1]
	similar, _ := ClosestMatch(item, prior)

	c.emit(Event{
		ID:      uuid.New(),
		Kind:    EventItemAdded,
		Item:    item,
		Items:   stored,
		Total:   len(stored),
		Similar: similar,
		At:      c.now(),
	})

	if _, _, err := c.notifier.Post(item + " has been added"); err != nil {
		return AddResult{}, fmt.Errorf("add item: %w", err)
	}

	return AddResult{Item: item, Total: len(stored)}, nil
}

// PickItem selects one item uniformly at random from the current list and
// emits an item-selected event. The store's canonical ordering is never
// touched: the shuffle runs on the snapshot copy.
func (c *Controller) PickItem() (PickResult, error) {
	eligible := c.store.Snapshot()
	n := 0
	for _, item := range eligible {
		if strings.TrimSpace(item) != "" {
			eligible[n] = item
			n++
		}
	}
	eligible = eligible[:n]
	if len(eligible) == 0 {
		return PickResult{}, fmt.Errorf("pick item: %w", ErrEmptyCollection)
	}

	shuffled := make([]string, len(eligible))
	copy(shuffled, eligible)
	Shuffle(shuffled, c.rng)

	result := PickResult{
		Selected: shuffled[0],
		Items:    eligible,
		At:       c.now(),
	}
	c.emit(Event{
		ID:    uuid.New(),
		Kind:  EventItemSelected,
		Item:  result.Selected,
		Items: eligible,
		Total: len(eligible),
		At:    result.At,
	})
	return result, nil
}

// Notifier exposes the controller's notifier so the rendering surface can
// drive phase transitions.
func (c *Controller) Notifier() *Notifier {
	return c.notifier
}

// Store exposes the list store for read-side rendering.
func (c *Controller) Store() *ListStore {
	return c.store
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l(e)
	}
}
