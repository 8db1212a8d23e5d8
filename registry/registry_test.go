package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauntletsec/gauntlet/module"
)

// stubSource serves canned descriptors per (kind, tier).
type stubSource struct {
	local   map[module.Kind][]module.Descriptor
	builtin map[module.Kind][]module.Descriptor
	err     error
}

func (s stubSource) Scan(ctx context.Context, kind module.Kind, tier module.Tier) ([]module.Descriptor, error) {
	if s.err != nil {
		return nil, s.err
	}
	if tier == module.TierLocal {
		return s.local[kind], nil
	}
	return s.builtin[kind], nil
}

func desc(kind module.Kind, tier module.Tier, name string) module.Descriptor {
	return module.Descriptor{Name: name, Kind: kind, Tier: tier}
}

func Test_Build_ScansBothTiers(t *testing.T) {
	src := stubSource{
		local: map[module.Kind][]module.Descriptor{
			module.KindPlugin: {desc(module.KindPlugin, module.TierLocal, "custom")},
		},
		builtin: map[module.Kind][]module.Descriptor{
			module.KindPlugin: {desc(module.KindPlugin, module.TierBuiltIn, "base64")},
		},
	}

	r, err := Build(context.Background(), src, module.KindPlugin)
	require.NoError(t, err)

	local, builtin := r.List(module.KindPlugin)
	assert.Len(t, local, 1)
	assert.Len(t, builtin, 1)
	assert.Equal(t, []module.Kind{module.KindPlugin}, r.Kinds())
}

func Test_Build_DefaultsToAllKinds(t *testing.T) {
	r, err := Build(context.Background(), stubSource{})
	require.NoError(t, err)
	assert.ElementsMatch(t, module.AllKinds(), r.Kinds())
}

func Test_Build_PropagatesScanError(t *testing.T) {
	_, err := Build(context.Background(), stubSource{err: errors.New("unreadable")}, module.KindJudge)
	assert.Error(t, err)
}

func Test_Resolve_LocalShadowsBuiltin(t *testing.T) {
	src := stubSource{
		local: map[module.Kind][]module.Descriptor{
			module.KindPlugin: {desc(module.KindPlugin, module.TierLocal, "base64")},
		},
		builtin: map[module.Kind][]module.Descriptor{
			module.KindPlugin: {desc(module.KindPlugin, module.TierBuiltIn, "base64")},
		},
	}
	r, err := Build(context.Background(), src, module.KindPlugin)
	require.NoError(t, err)

	d, err := r.Resolve(module.KindPlugin, "base64")
	require.NoError(t, err)
	assert.Equal(t, module.TierLocal, d.Tier)

	// Both tiers stay visible in the flat listing, without deduplication.
	assert.Equal(t, []string{"base64", "base64"}, r.NamesFlat(module.KindPlugin))

	// With the local entry gone, resolution falls through to built-in.
	withoutLocal, err := Build(context.Background(), stubSource{builtin: src.builtin}, module.KindPlugin)
	require.NoError(t, err)

	d, err = withoutLocal.Resolve(module.KindPlugin, "base64")
	require.NoError(t, err)
	assert.Equal(t, module.TierBuiltIn, d.Tier)
}

func Test_Resolve_NotFound(t *testing.T) {
	r, err := Build(context.Background(), stubSource{}, module.KindTarget)
	require.NoError(t, err)

	_, err = r.Resolve(module.KindTarget, "missing")
	assert.True(t, errors.Is(err, module.ErrNotFound))

	var notFound *module.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)
}

func Test_NamesFlat_LocalFirstInDiscoveryOrder(t *testing.T) {
	src := stubSource{
		local: map[module.Kind][]module.Descriptor{
			module.KindJudge: {
				desc(module.KindJudge, module.TierLocal, "alpha"),
				desc(module.KindJudge, module.TierLocal, "bravo"),
			},
		},
		builtin: map[module.Kind][]module.Descriptor{
			module.KindJudge: {desc(module.KindJudge, module.TierBuiltIn, "canary")},
		},
	}
	r, err := Build(context.Background(), src, module.KindJudge)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "bravo", "canary"}, r.NamesFlat(module.KindJudge))
	assert.Equal(t, r.NamesFlat(module.KindJudge), r.Collect(module.KindJudge))
}

func Test_List_ReturnsCopies(t *testing.T) {
	src := stubSource{
		local: map[module.Kind][]module.Descriptor{
			module.KindPlugin: {desc(module.KindPlugin, module.TierLocal, "one")},
		},
	}
	r, err := Build(context.Background(), src, module.KindPlugin)
	require.NoError(t, err)

	local, _ := r.List(module.KindPlugin)
	local[0].Name = "tampered"

	fresh, _ := r.List(module.KindPlugin)
	assert.Equal(t, "one", fresh[0].Name)
}
