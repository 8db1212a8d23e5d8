// Package discovery enumerates extension units from the two provenance
// tiers and normalizes them into descriptors. A unit that fails to load or
// fails metadata extraction is isolated: it surfaces as an errored
// descriptor and never aborts the surrounding scan.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gauntletsec/gauntlet/builtin"
	"github.com/gauntletsec/gauntlet/module"
	"github.com/gauntletsec/gauntlet/wasm"
)

// unitPattern matches the files inside a local provenance directory that
// count as extension units. Nested directories are never descended into.
const unitPattern = "*.wasm"

// Loader loads one local extension unit from its file path.
type Loader interface {
	Load(ctx context.Context, path string) (module.Unit, error)
}

// BuiltinSource enumerates the bundled units for a kind.
type BuiltinSource func(kind module.Kind) []module.Unit

// Scanner discovers extension units for a capability kind from a
// provenance tier.
type Scanner struct {
	root     string
	loader   Loader
	builtins BuiltinSource
	log      *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithRoot sets the project root containing the local provenance
// directories. Defaults to the current directory.
func WithRoot(root string) ScannerOption {
	return func(s *Scanner) { s.root = root }
}

// WithLoader sets the loader used for local units.
func WithLoader(l Loader) ScannerOption {
	return func(s *Scanner) { s.loader = l }
}

// WithBuiltins overrides the bundled unit source. Useful for tests and for
// disabling the built-in tier entirely.
func WithBuiltins(src BuiltinSource) ScannerOption {
	return func(s *Scanner) { s.builtins = src }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.log = l }
}

// NewScanner creates a scanner over the bundled library and the local
// provenance directories under the current working directory.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		root:     ".",
		loader:   wasm.NewLoader(),
		builtins: builtin.Units,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan enumerates the units available for kind under tier and returns one
// descriptor per unit, ordered lexicographically by name. Unit failures
// never propagate; they yield errored descriptors. The returned error
// covers only environmental problems (an unreadable provenance directory).
func (s *Scanner) Scan(ctx context.Context, kind module.Kind, tier module.Tier) ([]module.Descriptor, error) {
	switch tier {
	case module.TierLocal:
		return s.scanLocal(ctx, kind)
	case module.TierBuiltIn:
		return s.scanBuiltin(kind), nil
	default:
		return nil, fmt.Errorf("unknown provenance tier: %q", tier)
	}
}

func (s *Scanner) scanLocal(ctx context.Context, kind module.Kind) ([]module.Descriptor, error) {
	dir := filepath.Join(s.root, kind.DirName())

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		// No local provenance directory for this kind.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local %s directory: %w", kind, err)
	}

	var descriptors []module.Descriptor
	for _, entry := range entries {
		if entry.IsDir() {
			// Nested packages are not eligible units.
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			// Scaffold and index entries are never surfaced.
			s.log.Debug("discovery: skipping scaffold entry", "kind", kind.String(), "file", name)
			continue
		}
		if ok, _ := doublestar.Match(unitPattern, name); !ok {
			continue
		}

		unitName := strings.TrimSuffix(name, filepath.Ext(name))
		path := filepath.Join(dir, name)

		unit, err := s.loader.Load(ctx, path)
		if err != nil {
			s.log.Warn("discovery: unit failed to load",
				"kind", kind.String(), "name", unitName, "error", err)
			descriptors = append(descriptors, erroredDescriptor(kind, module.TierLocal, unitName))
			continue
		}

		descriptors = append(descriptors, s.describe(kind, module.TierLocal, unitName, unit))
	}

	// os.ReadDir already sorts by filename; unit names share one extension
	// so the trimmed names keep that order.
	return descriptors, nil
}

func (s *Scanner) scanBuiltin(kind module.Kind) []module.Descriptor {
	units := s.builtins(kind)

	descriptors := make([]module.Descriptor, 0, len(units))
	for _, unit := range units {
		descriptors = append(descriptors, s.describe(kind, module.TierBuiltIn, unit.Name(), unit))
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})
	return descriptors
}

// describe runs metadata extraction behind the per-unit isolation boundary
// and assembles the final descriptor.
func (s *Scanner) describe(kind module.Kind, tier module.Tier, name string, unit module.Unit) module.Descriptor {
	meta, err := Extract(unit)
	if err != nil {
		s.log.Warn("discovery: metadata extraction failed",
			"kind", kind.String(), "tier", tier.String(), "name", name, "error", err)
		return erroredDescriptor(kind, tier, name)
	}

	return module.Descriptor{
		Name:     name,
		Kind:     kind,
		Tier:     tier,
		Metadata: meta,
		Handle:   unit,
	}
}

func erroredDescriptor(kind module.Kind, tier module.Tier, name string) module.Descriptor {
	return module.Descriptor{
		Name:    name,
		Kind:    kind,
		Tier:    tier,
		Errored: true,
	}
}
