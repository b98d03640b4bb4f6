package placeholder

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonwraymond/confops/observe"
	"github.com/jonwraymond/confops/provider"
)

// mapSource is a Source backed by a plain map.
type mapSource map[string]string

func (m mapSource) TryGetRaw(key string) (string, int, bool, error) {
	v, ok := m[key]
	return v, 0, ok, nil
}

// errSource fails lookups for one key.
type errSource struct {
	mapSource
	errKey string
	err    error
}

func (s errSource) TryGetRaw(key string) (string, int, bool, error) {
	if key == s.errKey {
		return "", 0, true, s.err
	}
	return s.mapSource.TryGetRaw(key)
}

// captureLogger records warning messages for assertions.
type captureLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *captureLogger) Info(context.Context, string, ...observe.Field)  {}
func (l *captureLogger) Error(context.Context, string, ...observe.Field) {}
func (l *captureLogger) Debug(context.Context, string, ...observe.Field) {}

func (l *captureLogger) Warn(_ context.Context, msg string, _ ...observe.Field) {
	l.mu.Lock()
	l.warns = append(l.warns, msg)
	l.mu.Unlock()
}

func (l *captureLogger) WithComponent(string) observe.Logger { return l }

func mustResolver(t *testing.T, source Source, opts ...Options) *Resolver {
	t.Helper()
	r, err := NewResolver(source, opts...)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

func TestNewResolver_NilSource(t *testing.T) {
	if _, err := NewResolver(nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("NewResolver(nil) error = %v, want ErrNilSource", err)
	}
}

func TestResolver_Identity(t *testing.T) {
	r := mustResolver(t, mapSource{})

	got, err := r.Resolve("no tokens here")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "no tokens here" {
		t.Fatalf("Resolve() = %q, want identity", got)
	}
}

func TestResolver_DirectReference(t *testing.T) {
	r := mustResolver(t, mapSource{"key": "value"})

	got, err := r.Resolve("${key}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "value" {
		t.Fatalf("Resolve() = %q, want %q", got, "value")
	}
}

func TestResolver_DefaultFallback(t *testing.T) {
	r := mustResolver(t, mapSource{"present": "actual"})

	got, _ := r.Resolve("${present?default}")
	if got != "actual" {
		t.Fatalf("Resolve(present) = %q, want %q", got, "actual")
	}

	got, _ = r.Resolve("${absent?default}")
	if got != "default" {
		t.Fatalf("Resolve(absent) = %q, want %q", got, "default")
	}
}

func TestResolver_Transitive(t *testing.T) {
	r := mustResolver(t, mapSource{
		"a": "${b}",
		"b": "${c}",
		"c": "value",
	})

	got, err := r.Resolve("${a}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "value" {
		t.Fatalf("Resolve() = %q, want %q", got, "value")
	}
}

func TestResolver_LiteralPreservation(t *testing.T) {
	r := mustResolver(t, mapSource{})

	got, err := r.Resolve("${nokey}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "${nokey}" {
		t.Fatalf("Resolve() = %q, want the literal token", got)
	}
}

func TestResolver_EmbeddedTokens(t *testing.T) {
	r := mustResolver(t, mapSource{"h": "example.org"})

	got, _ := r.Resolve("host=${h} port=${p?8080}")
	if got != "host=example.org port=8080" {
		t.Fatalf("Resolve() = %q", got)
	}
}

func TestResolver_DefaultMayReferenceKeys(t *testing.T) {
	r := mustResolver(t, mapSource{"key1": "value1"})

	got, _ := r.Resolve("${nokey?${key1}}")
	if got != "value1" {
		t.Fatalf("Resolve() = %q, want %q", got, "value1")
	}

	got, _ = r.Resolve("${nokey?${other?fallback}}")
	if got != "fallback" {
		t.Fatalf("Resolve() = %q, want %q", got, "fallback")
	}
}

func TestResolver_SelfReferenceKeepsToken(t *testing.T) {
	logger := &captureLogger{}
	r := mustResolver(t, mapSource{"a": "${a}"}, Options{Logger: logger})

	got, err := r.Resolve("${a}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "${a}" {
		t.Fatalf("Resolve() = %q, want the literal token", got)
	}
	if len(logger.warns) == 0 {
		t.Fatalf("expected a cycle diagnostic through the logging hook")
	}
}

func TestResolver_MutualCycleTerminates(t *testing.T) {
	r := mustResolver(t, mapSource{
		"a": "${b}",
		"b": "${a}",
	})

	got, err := r.Resolve("${a}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "${a}" {
		t.Fatalf("Resolve() = %q, want %q", got, "${a}")
	}
}

func TestResolver_CycleFailPolicy(t *testing.T) {
	r := mustResolver(t, mapSource{"a": "${a}"}, Options{OnCycle: CycleFail})

	if _, err := r.Resolve("${a}"); !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("Resolve() error = %v, want ErrCycleDetected", err)
	}
}

func TestResolver_KeyReusableAfterResolution(t *testing.T) {
	// The same key on two sibling branches is not a cycle; only a key on
	// the active stack is.
	r := mustResolver(t, mapSource{
		"a": "${b} and ${b}",
		"b": "x",
	})

	got, err := r.Resolve("${a}")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "x and x" {
		t.Fatalf("Resolve() = %q, want %q", got, "x and x")
	}
}

func TestResolver_SourceErrorPropagates(t *testing.T) {
	boom := errors.New("explode")
	r := mustResolver(t, errSource{mapSource: mapSource{"ok": "v"}, errKey: "bad", err: boom})

	if _, err := r.Resolve("${bad}"); !errors.Is(err, boom) {
		t.Fatalf("Resolve() error = %v, want %v", err, boom)
	}

	got, err := r.Resolve("${ok}")
	if err != nil || got != "v" {
		t.Fatalf("Resolve(ok) = %q, %v", got, err)
	}
}

func TestResolver_SpecScenarioThroughAggregate(t *testing.T) {
	base := provider.NewMapProvider(map[string]string{
		"key1": "value1",
	})
	refs := provider.NewMapProvider(map[string]string{
		"key2": "${key1?notfound}",
		"key3": "${nokey?notfound}",
		"key4": "${nokey}",
	})
	agg, err := provider.NewAggregate(base, refs)
	if err != nil {
		t.Fatalf("NewAggregate() error = %v", err)
	}
	defer agg.Close()

	r := mustResolver(t, agg)

	cases := map[string]string{
		"key1": "value1",
		"key2": "value1",
		"key3": "notfound",
		"key4": "${nokey}",
	}
	for key, want := range cases {
		raw, _, ok, err := agg.TryGetRaw(key)
		if err != nil || !ok {
			t.Fatalf("TryGetRaw(%s) = %v, %v", key, ok, err)
		}
		got, err := r.Resolve(raw)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", key, err)
		}
		if got != want {
			t.Fatalf("Resolve(%s) = %q, want %q", key, got, want)
		}
	}
}
