// Package wasm loads local-tier extension units. A local unit is a single
// WASM file exporting `allocate`, the kind-specific entry point and,
// optionally, `options`, `describe` and `api_version`. Payloads cross the
// guest boundary as JSON packed into a (ptr<<32)|len word.
package wasm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/gauntletsec/gauntlet/module"
)

// Loader instantiates WASM extension units on a shared runtime. The
// runtime is created on first use and must be released with Close.
type Loader struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	cache   wazero.CompilationCache
}

// Option configures a Loader.
type Option func(*Loader)

// WithCompilationCache shares compiled-module caching across loaders.
func WithCompilationCache(cache wazero.CompilationCache) Option {
	return func(l *Loader) { l.cache = cache }
}

// NewLoader creates a loader. The underlying runtime is initialized
// lazily on the first Load.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and instantiates one unit file. The unit name is the file
// name without its extension. Any instantiation failure or an unsupported
// api_version declaration fails the load; discovery converts that into an
// errored descriptor.
func (l *Loader) Load(ctx context.Context, path string) (module.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	mod, err := l.init(ctx).InstantiateWithConfig(ctx, data,
		wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", name, err)
	}

	unit := &Unit{name: name, mod: mod}
	if err := unit.checkAPIVersion(ctx); err != nil {
		_ = mod.Close(ctx)
		return nil, err
	}
	return unit, nil
}

// Close releases the runtime and every module instantiated on it.
func (l *Loader) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.runtime == nil {
		return nil
	}
	err := l.runtime.Close(ctx)
	l.runtime = nil
	return err
}

func (l *Loader) init(ctx context.Context) wazero.Runtime {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.runtime == nil {
		cfg := wazero.NewRuntimeConfig()
		if l.cache != nil {
			cfg = cfg.WithCompilationCache(l.cache)
		}
		rt := wazero.NewRuntimeWithConfig(ctx, cfg)
		wasi_snapshot_preview1.MustInstantiate(ctx, rt)
		l.runtime = rt
	}
	return l.runtime
}
