package provider

// Provider is one source of raw key/value configuration data.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: TryGet returns a non-nil error only when the value exists but
//   could not be produced (for example a failed decryption in a synthetic
//   layer); raw sources return a nil error.
// - Ownership: consumers never mutate a Provider; data changes are the
//   provider's own business and are announced through Watch.
type Provider interface {
	// TryGet returns the raw value for key. A missing key reports
	// found=false with an empty value, never an empty string with
	// found=true.
	TryGet(key string) (value string, found bool, err error)

	// Keys returns all keys under prefix. An empty prefix matches every
	// key. Resolution layers forward enumeration unchanged, so the key
	// set is identical at every layer.
	Keys(prefix string) []string

	// Watch returns a channel that is closed the next time the provider's
	// data changes. After it fires, call Watch again for a fresh channel.
	// Providers that never change may return nil.
	Watch() <-chan struct{}
}
