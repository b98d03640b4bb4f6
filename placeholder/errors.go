package placeholder

import "errors"

var (
	// ErrCycleDetected indicates a key path reappeared on the active
	// resolution stack. Returned only under CycleFail; the default policy
	// keeps the token literal instead.
	ErrCycleDetected = errors.New("placeholder: resolution cycle detected")

	// ErrNilSource indicates a resolver was constructed without a source.
	ErrNilSource = errors.New("placeholder: source is nil")
)
