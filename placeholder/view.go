package placeholder

import (
	"context"
	"time"

	"github.com/jonwraymond/confops/observe"
	"github.com/jonwraymond/confops/provider"
)

// View is a synthetic provider that resolves placeholder tokens in every
// value it serves. Key enumeration and change signals pass through to the
// aggregate unchanged: resolution affects values, never the key set.
//
// Nothing is cached; every lookup recomputes from the aggregate's current
// snapshot, trading CPU for strict reload consistency.
type View struct {
	agg      *provider.Aggregate
	resolver *Resolver
	metrics  observe.Metrics
}

// NewView creates a resolved view over agg.
func NewView(agg *provider.Aggregate, opts ...Options) (*View, error) {
	if agg == nil {
		return nil, ErrNilSource
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Metrics == nil {
		o.Metrics = observe.NopMetrics()
	}
	resolver, err := NewResolver(agg, o)
	if err != nil {
		return nil, err
	}
	return &View{agg: agg, resolver: resolver, metrics: o.Metrics}, nil
}

// TryGet returns the placeholder-resolved value for key. A key absent from
// every provider reports not-found: placeholders never manufacture keys.
func (v *View) TryGet(key string) (string, bool, error) {
	start := time.Now()
	raw, _, found, err := v.agg.TryGetRaw(key)
	if err != nil || !found {
		v.metrics.RecordLookup(context.Background(), key, found, time.Since(start), err)
		return "", found, err
	}

	resolved, err := v.resolver.Resolve(raw)
	v.metrics.RecordLookup(context.Background(), key, true, time.Since(start), err)
	if err != nil {
		return "", true, err
	}
	return resolved, true, nil
}

// Keys delegates to the aggregate unchanged.
func (v *View) Keys(prefix string) []string {
	return v.agg.Keys(prefix)
}

// Watch delegates to the aggregate unchanged.
func (v *View) Watch() <-chan struct{} {
	return v.agg.Watch()
}

// Ensure View implements Provider
var _ provider.Provider = (*View)(nil)
