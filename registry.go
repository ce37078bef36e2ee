package smltar

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages strategy factories by mode name. The built-in modes
// are registered at construction; callers may add their own.
type Registry struct {
	mu        sync.RWMutex
	factories map[Mode]StrategyFactory
}

// NewRegistry creates a Registry with the built-in strategies
// registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Mode]StrategyFactory)}
	r.factories[ModeWords] = newWordStrategy
	r.factories[ModeRegex] = newWordStrategy
	r.factories[ModeNgrams] = newWordNgramStrategy
	r.factories[ModeCharacters] = func(cfg Config) (Strategy, error) {
		return newCharStrategy(cfg, 1)
	}
	r.factories[ModeCharacterNgrams] = func(cfg Config) (Strategy, error) {
		return newCharStrategy(cfg, 0)
	}
	return r
}

// Get returns the factory registered under the given mode.
func (r *Registry) Get(mode Mode) (StrategyFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, mode)
	}
	return f, nil
}

// Register adds a custom strategy factory to the registry.
func (r *Registry) Register(mode Mode, f StrategyFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[mode]; exists {
		return fmt.Errorf("smltar: mode already registered: %q", mode)
	}
	r.factories[mode] = f
	return nil
}

// Modes returns the registered mode names, sorted.
func (r *Registry) Modes() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	modes := make([]Mode, 0, len(r.factories))
	for m := range r.factories {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

var defaultRegistry = NewRegistry()

// Register adds a custom strategy factory to the default registry used
// by New.
func Register(mode Mode, f StrategyFactory) error {
	return defaultRegistry.Register(mode, f)
}
