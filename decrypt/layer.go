package decrypt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/confops/observe"
	"github.com/jonwraymond/confops/provider"
)

// Marker is the default prefix identifying a ciphertext value.
const Marker = "{cipher}"

// Options configures a Layer.
type Options struct {
	// Marker overrides the ciphertext prefix. Defaults to Marker.
	Marker string

	// Logger receives decryption failure diagnostics. Defaults to no-op.
	Logger observe.Logger

	// Metrics records decryption counts. Defaults to no-op.
	Metrics observe.Metrics
}

// Layer is a synthetic provider that decrypts marker-prefixed values and
// passes everything else through unchanged. Key enumeration and change
// signals delegate to the inner provider.
type Layer struct {
	inner   provider.Provider
	dec     Decryptor
	marker  string
	logger  observe.Logger
	metrics observe.Metrics
}

// NewLayer creates a decrypting facade over inner. Both dependencies are
// required: a missing one fails here, not at lookup time.
func NewLayer(inner provider.Provider, dec Decryptor, opts ...Options) (*Layer, error) {
	if inner == nil {
		return nil, ErrNilProvider
	}
	if dec == nil {
		return nil, ErrNilDecryptor
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Marker == "" {
		o.Marker = Marker
	}
	if o.Logger == nil {
		o.Logger = observe.NopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = observe.NopMetrics()
	}
	return &Layer{
		inner:   inner,
		dec:     dec,
		marker:  o.Marker,
		logger:  o.Logger.WithComponent("decrypt"),
		metrics: o.Metrics,
	}, nil
}

// TryGet returns the inner value, decrypted when it carries the cipher
// marker. A decryption failure surfaces as an error wrapping
// ErrDecryptFailed for this key only; sibling keys are unaffected.
func (l *Layer) TryGet(key string) (string, bool, error) {
	value, found, err := l.inner.TryGet(key)
	if err != nil || !found {
		return value, found, err
	}

	cipherText, marked := strings.CutPrefix(value, l.marker)
	if !marked {
		return value, true, nil
	}

	start := time.Now()
	plain, err := l.dec.Decrypt(cipherText)
	l.metrics.RecordDecrypt(context.Background(), key, time.Since(start), err)
	if err != nil {
		l.logger.Error(context.Background(), "decryption failed",
			observe.Field{Key: "key", Value: key})
		return "", true, fmt.Errorf("decrypt %q: %w", key, errors.Join(ErrDecryptFailed, err))
	}
	return plain, true, nil
}

// Keys delegates to the inner provider unchanged.
func (l *Layer) Keys(prefix string) []string {
	return l.inner.Keys(prefix)
}

// Watch delegates to the inner provider unchanged.
func (l *Layer) Watch() <-chan struct{} {
	return l.inner.Watch()
}

// Ensure Layer implements Provider
var _ provider.Provider = (*Layer)(nil)
