package provider

import "errors"

var (
	// ErrNoProviders indicates an aggregate was constructed without any
	// usable provider.
	ErrNoProviders = errors.New("provider: no providers supplied")
)
