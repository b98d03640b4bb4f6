package placeholder

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonwraymond/confops/observe"
)

// Source supplies raw values for key paths, typically a provider.Aggregate.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: a non-nil error means the key exists but its value could not
//   be produced; it aborts resolution of the current value only.
type Source interface {
	TryGetRaw(key string) (value string, ordinal int, found bool, err error)
}

// CyclePolicy controls what happens when a key path reappears on the
// active resolution stack.
//
// CycleKeepToken, the default, substitutes the token's original source
// text and reports the cycle through the logging hook, so a configuration
// typo degrades to a literal instead of failing application startup.
// CycleFail returns ErrCycleDetected from the lookup instead.
type CyclePolicy int

const (
	CycleKeepToken CyclePolicy = iota
	CycleFail
)

// Options configures a Resolver or View.
type Options struct {
	// Logger receives cycle diagnostics. Defaults to a no-op logger.
	Logger observe.Logger

	// Metrics records lookup and cycle counts. Defaults to no-op.
	Metrics observe.Metrics

	// OnCycle selects the cycle policy. Defaults to CycleKeepToken.
	OnCycle CyclePolicy
}

// Resolver expands placeholder tokens against a Source.
//
// Contract:
// - Concurrency: safe for concurrent use; the visited set is allocated per
//   top-level call and never shared.
// - Errors: only Source failures and, under CycleFail, cycles produce
//   errors. An absent key without a default keeps the token literal.
type Resolver struct {
	source  Source
	logger  observe.Logger
	metrics observe.Metrics
	onCycle CyclePolicy
}

// NewResolver creates a resolver over source.
func NewResolver(source Source, opts ...Options) (*Resolver, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Logger == nil {
		o.Logger = observe.NopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = observe.NopMetrics()
	}
	return &Resolver{
		source:  source,
		logger:  o.Logger.WithComponent("placeholder"),
		metrics: o.Metrics,
		onCycle: o.OnCycle,
	}, nil
}

// Resolve expands every placeholder token in raw. A string containing no
// token marker is returned unchanged without allocation.
func (r *Resolver) Resolve(raw string) (string, error) {
	if !strings.Contains(raw, tokenOpen) {
		return raw, nil
	}
	return r.resolve(raw, make(map[string]struct{}))
}

// resolve expands raw with visiting as the set of key paths on the active
// call stack.
func (r *Resolver) resolve(raw string, visiting map[string]struct{}) (string, error) {
	segs := parse(raw)
	var b strings.Builder
	b.Grow(len(raw))
	for _, seg := range segs {
		if !seg.isExpr {
			b.WriteString(seg.literal)
			continue
		}
		out, err := r.resolveToken(seg.expr, visiting)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func (r *Resolver) resolveToken(expr expression, visiting map[string]struct{}) (string, error) {
	if _, active := visiting[expr.key]; active {
		ctx := context.Background()
		r.metrics.RecordCycle(ctx, expr.key)
		if r.onCycle == CycleFail {
			return "", fmt.Errorf("%w: %q", ErrCycleDetected, expr.key)
		}
		r.logger.Warn(ctx, "placeholder cycle, keeping token literal",
			observe.Field{Key: "key", Value: expr.key})
		return expr.raw, nil
	}

	value, _, found, err := r.source.TryGetRaw(expr.key)
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", expr.key, err)
	}
	if found {
		// The referenced value may contain further tokens.
		visiting[expr.key] = struct{}{}
		out, err := r.resolve(value, visiting)
		delete(visiting, expr.key)
		return out, err
	}
	if expr.hasDefault {
		// Defaults may reference other keys or nest further tokens.
		return r.resolve(expr.def, visiting)
	}
	// Absent key, no default: identity transform for this token.
	return expr.raw, nil
}
