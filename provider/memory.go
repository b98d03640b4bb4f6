package provider

import (
	"sort"
	"strings"
	"sync"
)

// MapProvider is an in-memory Provider backed by a string map. It is the
// reference implementation, used by tests and by hosts that assemble
// configuration programmatically.
type MapProvider struct {
	mu     sync.RWMutex
	values map[string]string
	watch  chan struct{}
}

// NewMapProvider creates a MapProvider holding a copy of values.
func NewMapProvider(values map[string]string) *MapProvider {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &MapProvider{values: m, watch: make(chan struct{})}
}

// TryGet returns the value for key. Never errors.
func (p *MapProvider) TryGet(key string) (string, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok, nil
}

// Keys returns all keys under prefix, sorted.
func (p *MapProvider) Keys(prefix string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Watch returns the pending change channel.
func (p *MapProvider) Watch() <-chan struct{} {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.watch
}

// Set stores key=value and fires the change signal.
func (p *MapProvider) Set(key, value string) {
	p.mu.Lock()
	p.values[key] = value
	p.notifyLocked()
	p.mu.Unlock()
}

// Delete removes key and fires the change signal. No-op on missing keys.
func (p *MapProvider) Delete(key string) {
	p.mu.Lock()
	if _, ok := p.values[key]; ok {
		delete(p.values, key)
		p.notifyLocked()
	}
	p.mu.Unlock()
}

// Replace swaps the whole data set and fires the change signal.
func (p *MapProvider) Replace(values map[string]string) {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	p.mu.Lock()
	p.values = m
	p.notifyLocked()
	p.mu.Unlock()
}

func (p *MapProvider) notifyLocked() {
	close(p.watch)
	p.watch = make(chan struct{})
}

// Ensure MapProvider implements Provider
var _ Provider = (*MapProvider)(nil)
