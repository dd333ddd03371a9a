package transform

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownTransform is returned by the strict dispatch methods when no
// transform is registered under the requested ID.
var ErrUnknownTransform = errors.New("unknown transform")

// DefaultIntensity is the zalgo intensity used when Params leaves it zero.
const DefaultIntensity = 10

// Params carries the optional inputs of a transform call.
type Params struct {
	// Intensity drives zalgoText. Zero selects the engine default; negative
	// values disable the effect.
	Intensity int
	// Rand feeds the randomized effects. Nil selects the engine source.
	Rand Rand
}

// Engine dispatches transforms from a registry.
type Engine struct {
	reg       *Registry
	rand      Rand
	intensity int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) { e.reg = r }
}

// WithRand sets the random source used when a call does not supply one.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithIntensity sets the default zalgo intensity.
func WithIntensity(n int) Option {
	return func(e *Engine) { e.intensity = n }
}

// NewEngine returns an engine over the built-in registry and the process-wide
// random source unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		reg:       Default(),
		rand:      globalRand{},
		intensity: DefaultIntensity,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry { return e.reg }

func (e *Engine) fill(p Params) Params {
	if p.Rand == nil {
		p.Rand = e.rand
	}

	if p.Intensity == 0 {
		p.Intensity = e.intensity
	}

	return p
}

// Apply runs the transform registered under id. An unknown id is a no-op:
// the input is returned unchanged.
func (e *Engine) Apply(id, input string, p Params) string {
	t, ok := e.reg.lookup(id)
	if !ok {
		slog.Debug("unknown transform, returning input", "id", id)

		return input
	}

	return t.Func(input, e.fill(p))
}

// ApplyStrict is Apply but reports unknown ids as ErrUnknownTransform.
func (e *Engine) ApplyStrict(id, input string, p Params) (string, error) {
	t, ok := e.reg.lookup(id)
	if !ok {
		return input, fmt.Errorf("%w: %s", ErrUnknownTransform, id)
	}

	return t.Func(input, e.fill(p)), nil
}

// Chain applies ids in order, feeding each output into the next transform.
// It stops at the first unknown id and returns the text produced so far.
func (e *Engine) Chain(ids []string, input string, p Params) (string, error) {
	out := input
	for _, id := range ids {
		next, err := e.ApplyStrict(id, out, p)
		if err != nil {
			return out, err
		}

		out = next
	}

	return out, nil
}
