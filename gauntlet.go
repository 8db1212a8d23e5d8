// Package gauntlet is the extensibility core of an adversarial-prompt
// test harness. User projects drop WASM extension units into local
// provenance directories; the bundled library supplies the built-in tier;
// discovery merges both into a registry snapshot; and the pipeline engine
// composes registered plugins into ordered text-transformation chains.
package gauntlet

import (
	"context"

	"github.com/gauntletsec/gauntlet/config"
	"github.com/gauntletsec/gauntlet/discovery"
	"github.com/gauntletsec/gauntlet/module"
	"github.com/gauntletsec/gauntlet/pipeline"
	"github.com/gauntletsec/gauntlet/registry"
	"github.com/gauntletsec/gauntlet/wasm"
)

// Harness wires discovery, the registry store and the chain engine for a
// configured project.
type Harness struct {
	cfg    *config.Config
	loader *wasm.Loader
	store  *registry.Store
}

// Open builds the first registry snapshot for the configured project and
// returns a harness over it.
func Open(ctx context.Context, cfg *config.Config) (*Harness, error) {
	kinds, err := cfg.KindList()
	if err != nil {
		return nil, err
	}

	loader := wasm.NewLoader()
	opts := []discovery.ScannerOption{
		discovery.WithRoot(cfg.LocalRoot),
		discovery.WithLoader(loader),
	}
	if cfg.DisableBuiltins {
		opts = append(opts, discovery.WithBuiltins(func(module.Kind) []module.Unit { return nil }))
	}
	scanner := discovery.NewScanner(opts...)

	store := registry.NewStore(func(ctx context.Context) (*registry.Registry, error) {
		return registry.Build(ctx, scanner, kinds...)
	})
	if err := store.Refresh(ctx); err != nil {
		_ = loader.Close(ctx)
		return nil, err
	}

	return &Harness{cfg: cfg, loader: loader, store: store}, nil
}

// Registry returns the current snapshot. Take it once per operation.
func (h *Harness) Registry() *registry.Registry {
	return h.store.Current()
}

// Refresh rebuilds the registry, picking up filesystem changes. The new
// snapshot replaces the old one atomically for subsequent lookups;
// in-flight operations keep the snapshot they started with.
func (h *Harness) Refresh(ctx context.Context) error {
	return h.store.Refresh(ctx)
}

// Engine returns a chain engine bound to the current snapshot.
func (h *Harness) Engine() *pipeline.Engine {
	return pipeline.NewEngine(h.store.Current())
}

// Close releases the WASM runtime backing the local tier.
func (h *Harness) Close(ctx context.Context) error {
	return h.loader.Close(ctx)
}
