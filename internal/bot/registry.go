package bot

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"minpai/internal/cache"
)

// Registry hands out one Brain per tier, creating each on first use.
type Registry struct {
	cache *cache.GeneralCache

	// mu serializes builds with Reset so no brain built from old tuning
	// is stored after a Reset.
	mu     sync.RWMutex
	tuning Tuning
	rng    *rand.Rand
	now    func() time.Time
	build  BrainFactory
}

// BrainFactory builds the brain for a level.
type BrainFactory func(level Level, tuning Tuning, rng *rand.Rand, now func() time.Time) (Brain, error)

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithRand makes the easy tier draw from rng.
func WithRand(rng *rand.Rand) RegistryOption {
	return func(r *Registry) { r.rng = rng }
}

// WithClock sets the clock used by the searching tiers.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithFactory replaces NewBrain as the way brains are built.
func WithFactory(build BrainFactory) RegistryOption {
	return func(r *Registry) { r.build = build }
}

// NewRegistry builds a registry whose brains use tuning.
func NewRegistry(tuning Tuning, opts ...RegistryOption) (*Registry, error) {
	c, err := cache.NewGeneralCache(int64(len(Levels))*4, 0)
	if err != nil {
		return nil, fmt.Errorf("bot registry: %w", err)
	}
	r := &Registry{cache: c, tuning: tuning, build: NewBrain}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the brain for label, which falls back to DefaultLevel when
// unknown, together with the level actually used. A factory error panics.
func (r *Registry) Get(label string) (Brain, Level) {
	level := NormalizeLevel(label)
	if b, ok := r.cached(level); ok {
		return b, level
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.cached(level); ok {
		return b, level
	}
	b, err := r.build(level, r.tuning, r.rng, r.now)
	if err != nil {
		panic(fmt.Errorf("build %s brain: %w", level, err))
	}
	r.cache.Set(string(level), b)
	return b, level
}

func (r *Registry) cached(level Level) (Brain, bool) {
	v, ok := r.cache.Get(string(level))
	if !ok {
		return nil, false
	}
	b, ok := v.(Brain)
	return b, ok
}

// Tuning returns the tuning new brains are built with.
func (r *Registry) Tuning() Tuning {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tuning
}

// Reset swaps the tuning and drops every cached brain.
func (r *Registry) Reset(tuning Tuning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tuning = tuning
	r.cache.Clear()
}

// Close releases the cache.
func (r *Registry) Close() {
	r.cache.Close()
}
