package widget

import "errors"

// Error kinds surfaced by the widget core. Callers match with errors.Is;
// every failure is deterministic given the same input, so nothing here is
// worth retrying.
var (
	// ErrValidation covers empty or otherwise unusable input.
	ErrValidation = errors.New("validation")

	// ErrEmptyCollection is returned by a pick with zero eligible items.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrNotImplemented is returned by the router for an unknown
	// interaction kind.
	ErrNotImplemented = errors.New("not implemented")

	// ErrState marks a missing collaborator, e.g. a controller built
	// without a notifier.
	ErrState = errors.New("invalid state")

	// ErrInvalidArgument marks a payload of the wrong dynamic type.
	ErrInvalidArgument = errors.New("invalid argument")
)
