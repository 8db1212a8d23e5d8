// Package registry merges discovered descriptors from both provenance
// tiers into an immutable, queryable snapshot with name-based resolution.
package registry

import (
	"context"

	"github.com/gauntletsec/gauntlet/module"
)

type tierSet struct {
	local   []module.Descriptor
	builtin []module.Descriptor
}

// Registry is an immutable snapshot of the discovered extension units,
// keyed by capability kind. Build a new one to pick up filesystem changes;
// never mutate an existing snapshot.
type Registry struct {
	kinds map[module.Kind]tierSet
}

// Build scans both provenance tiers for each requested kind. With no kinds
// given, all four are scanned.
func Build(ctx context.Context, src Source, kinds ...module.Kind) (*Registry, error) {
	if len(kinds) == 0 {
		kinds = module.AllKinds()
	}

	r := &Registry{kinds: make(map[module.Kind]tierSet, len(kinds))}
	for _, kind := range kinds {
		local, err := src.Scan(ctx, kind, module.TierLocal)
		if err != nil {
			return nil, err
		}
		builtin, err := src.Scan(ctx, kind, module.TierBuiltIn)
		if err != nil {
			return nil, err
		}
		r.kinds[kind] = tierSet{local: local, builtin: builtin}
	}
	return r, nil
}

// List returns the two ordered descriptor sequences for a kind. Both tiers
// are returned in full even when names collide across them.
func (r *Registry) List(kind module.Kind) (local, builtin []module.Descriptor) {
	set := r.kinds[kind]
	local = append([]module.Descriptor(nil), set.local...)
	builtin = append([]module.Descriptor(nil), set.builtin...)
	return local, builtin
}

// NamesFlat returns the local names followed by the built-in names in
// discovery order. Names colliding across tiers appear twice.
func (r *Registry) NamesFlat(kind module.Kind) []string {
	set := r.kinds[kind]
	names := make([]string, 0, len(set.local)+len(set.builtin))
	for _, d := range set.local {
		names = append(names, d.Name)
	}
	for _, d := range set.builtin {
		names = append(names, d.Name)
	}
	return names
}

// Collect is an alias for NamesFlat for callers that only need to know
// which names are selectable.
func (r *Registry) Collect(kind module.Kind) []string {
	return r.NamesFlat(kind)
}

// Resolve returns the descriptor backing a name. A local unit always
// shadows a built-in unit of the same name; this is the single override
// rule of the system.
func (r *Registry) Resolve(kind module.Kind, name string) (module.Descriptor, error) {
	set := r.kinds[kind]
	for _, d := range set.local {
		if d.Name == name {
			return d, nil
		}
	}
	for _, d := range set.builtin {
		if d.Name == name {
			return d, nil
		}
	}
	return module.Descriptor{}, &module.NotFoundError{Kind: kind, Name: name}
}

// Kinds returns the kinds this snapshot was built for.
func (r *Registry) Kinds() []module.Kind {
	kinds := make([]module.Kind, 0, len(r.kinds))
	for _, k := range module.AllKinds() {
		if _, ok := r.kinds[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
