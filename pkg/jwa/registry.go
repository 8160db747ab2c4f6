package jwa

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Registry maps algorithm names to algorithm instances.
// Populate it before sharing; once populated, lookups are safe for
// concurrent use. Register is not.
type Registry struct {
	algorithms map[string]Algorithm
	names      []string
	logger     *slog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registration and failed lookups.
// Key material, messages and signatures are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an algorithm to the registry.
// Each algorithm must have a unique, non-empty name.
func (r *Registry) Register(alg Algorithm) error {
	if alg == nil {
		return fmt.Errorf("jwa: cannot register nil algorithm")
	}

	name := alg.Name()
	if name == "" {
		return fmt.Errorf("jwa: cannot register algorithm with empty name")
	}
	if alg.Kind() != KindNone && !alg.Hash().Available() {
		return fmt.Errorf("jwa: %s: hash %v is not linked into the binary", name, alg.Hash())
	}
	if _, exists := r.algorithms[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, name)
	}

	r.algorithms[name] = alg
	r.names = append(r.names, name)
	r.logger.Debug("registered algorithm", "alg", name, "kind", alg.Kind().String())
	return nil
}

// Lookup retrieves an algorithm by name.
// The same instance is returned on every call. Names are case-sensitive
// and no default is ever substituted for an unknown name.
func (r *Registry) Lookup(name string) (Algorithm, error) {
	alg, exists := r.algorithms[name]
	if !exists {
		r.logger.Warn("unknown algorithm requested", "alg", name)
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// MustLookup is like Lookup but panics if the name is not registered
func (r *Registry) MustLookup(name string) Algorithm {
	alg, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return alg
}

// FromJSON decodes a JSON string holding an algorithm name and looks it up
func (r *Registry) FromJSON(data []byte) (Algorithm, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	}
	return r.Lookup(name)
}

// Names returns registered algorithm names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry holding the built-in algorithms.
// It is populated on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		if err := RegisterBuiltins(r); err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Lookup retrieves a built-in algorithm by name from the default registry
func Lookup(name string) (Algorithm, error) {
	return Default().Lookup(name)
}

// FromName is an alias of Lookup
func FromName(name string) (Algorithm, error) {
	return Lookup(name)
}

// FromJSON decodes an algorithm name from JSON using the default registry
func FromJSON(data []byte) (Algorithm, error) {
	return Default().FromJSON(data)
}

// Names returns the names in the default registry
func Names() []string {
	return Default().Names()
}
