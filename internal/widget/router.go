package widget

import "fmt"

// Handler processes one interaction kind. The payload's meaning is fixed by
// the kind ("submit" carries the input text; "pick" carries nil).
type Handler func(payload any) error

// Router maps interaction kinds to handlers through an explicit table built
// at initialization. This is the widget's single subscription point: the
// rendering surface registers once and dispatches every interaction kind
// through Route. Unknown kinds fail closed rather than falling back to any
// name-derivation scheme.
type Router struct {
	handlers map[string]Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Bind registers the handler for kind, replacing any previous binding.
func (r *Router) Bind(kind string, h Handler) {
	r.handlers[kind] = h
}

// Route dispatches payload to the handler bound to kind.
func (r *Router) Route(kind string, payload any) error {
	h, ok := r.handlers[kind]
	if !ok {
		return fmt.Errorf("no handler for %q: %w", kind, ErrNotImplemented)
	}
	return h(payload)
}
