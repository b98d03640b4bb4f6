package provider

import (
	"sort"
	"sync"
	"sync/atomic"
)

// snapshot is an immutable ordered view of the provider chain.
type snapshot struct {
	providers []Provider
}

// Aggregate combines an ordered provider chain into one logical key space.
//
// For a key present in more than one provider, the provider with the
// highest ordinal (added last) determines the visible value, preserving
// the override semantics the chain would have had on its own. The chain is
// held as an immutable snapshot replaced atomically when any wrapped
// provider signals a change, so concurrent readers observe either the
// fully-old or the fully-new snapshot, never a mix.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Ownership: providers are referenced, never copied or mutated.
type Aggregate struct {
	snap atomic.Pointer[snapshot]

	mu     sync.Mutex
	watch  chan struct{}
	gen    uint64
	done   chan struct{}
	closed bool
}

// NewAggregate creates an aggregate over providers in precedence order:
// the last provider wins for keys defined more than once. Nil entries are
// skipped; at least one usable provider is required.
func NewAggregate(providers ...Provider) (*Aggregate, error) {
	ps := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	if len(ps) == 0 {
		return nil, ErrNoProviders
	}

	a := &Aggregate{
		watch: make(chan struct{}),
		done:  make(chan struct{}),
	}
	a.snap.Store(&snapshot{providers: ps})

	a.mu.Lock()
	a.subscribeLocked()
	a.mu.Unlock()
	return a, nil
}

// TryGetRaw scans providers from highest to lowest ordinal and returns the
// first hit along with the ordinal of the provider that supplied it. A
// provider error for the key counts as a hit and is propagated.
func (a *Aggregate) TryGetRaw(key string) (value string, ordinal int, found bool, err error) {
	ps := a.snap.Load().providers
	for i := len(ps) - 1; i >= 0; i-- {
		v, ok, err := ps[i].TryGet(key)
		if ok || err != nil {
			return v, i, ok, err
		}
	}
	return "", -1, false, nil
}

// TryGet implements Provider.
func (a *Aggregate) TryGet(key string) (string, bool, error) {
	v, _, ok, err := a.TryGetRaw(key)
	return v, ok, err
}

// Keys returns the deduplicated union of all providers' keys under prefix,
// sorted for determinism.
func (a *Aggregate) Keys(prefix string) []string {
	ps := a.snap.Load().providers
	seen := make(map[string]struct{})
	for _, p := range ps {
		for _, k := range p.Keys(prefix) {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Watch implements Provider. The returned channel is closed after the next
// snapshot swap.
func (a *Aggregate) Watch() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.watch
}

// Len returns the number of providers in the current snapshot.
func (a *Aggregate) Len() int {
	return len(a.snap.Load().providers)
}

// Close stops change propagation. Idempotent. Lookups remain usable
// against the last snapshot.
func (a *Aggregate) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	close(a.done)
	return nil
}

// subscribeLocked arms one waiter per provider against the provider's
// current watch channel. Callers must hold mu.
func (a *Aggregate) subscribeLocked() {
	a.gen++
	gen := a.gen
	for _, p := range a.snap.Load().providers {
		ch := p.Watch()
		if ch == nil {
			continue
		}
		go func(ch <-chan struct{}) {
			select {
			case <-ch:
				a.reload(gen)
			case <-a.done:
			}
		}(ch)
	}
}

// reload takes a fresh snapshot and re-arms subscriptions. Waiters from
// older generations are ignored so a single upstream change produces
// exactly one swap.
func (a *Aggregate) reload(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || gen != a.gen {
		return
	}

	old := a.snap.Load().providers
	ps := make([]Provider, len(old))
	copy(ps, old)
	a.snap.Store(&snapshot{providers: ps})

	close(a.watch)
	a.watch = make(chan struct{})
	a.subscribeLocked()
}

// Ensure Aggregate implements Provider
var _ Provider = (*Aggregate)(nil)
