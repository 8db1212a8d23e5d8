package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauntletsec/gauntlet/module"
)

func writeUnitFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("\x00asm"), 0o600))
}

func localScanner(t *testing.T, loader Loader) (*Scanner, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plugins"), 0o750))
	s := NewScanner(
		WithRoot(root),
		WithLoader(loader),
		WithBuiltins(func(module.Kind) []module.Unit { return nil }),
		WithLogger(NewTestLogger()),
	)
	return s, filepath.Join(root, "plugins")
}

func Test_Scanner_LocalTier(t *testing.T) {
	loader := &StubLoader{
		Units: map[string]module.Unit{
			"alpha": StubUnit{UnitName: "alpha", Variants: []string{"x", "y"}, UsesModel: true,
				UnitTags: []module.Tag{module.TagEncoding}, Description: "alpha unit"},
		},
		Errs: map[string]error{
			"bravo": errors.New("bad magic"),
		},
	}
	s, dir := localScanner(t, loader)

	writeUnitFile(t, dir, "bravo.wasm")
	writeUnitFile(t, dir, "alpha.wasm")
	writeUnitFile(t, dir, "_scaffold.wasm")
	writeUnitFile(t, dir, ".hidden.wasm")
	writeUnitFile(t, dir, "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))

	descriptors, err := s.Scan(context.Background(), module.KindPlugin, module.TierLocal)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	alpha := descriptors[0]
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, module.KindPlugin, alpha.Kind)
	assert.Equal(t, module.TierLocal, alpha.Tier)
	assert.False(t, alpha.Errored)
	assert.Equal(t, []string{"x", "y"}, alpha.Options)
	assert.True(t, alpha.UsesExternalModel)
	assert.Equal(t, "alpha unit", alpha.Description)
	assert.NotNil(t, alpha.Handle)

	bravo := descriptors[1]
	assert.Equal(t, "bravo", bravo.Name)
	assert.True(t, bravo.Errored)
	assert.Empty(t, bravo.Options)
	assert.False(t, bravo.UsesExternalModel)
	assert.Empty(t, bravo.Tags)
	assert.Equal(t, "", bravo.Description)
	assert.Nil(t, bravo.Handle)
}

func Test_Scanner_LocalTier_MissingDir(t *testing.T) {
	s := NewScanner(
		WithRoot(t.TempDir()),
		WithLoader(&StubLoader{}),
		WithLogger(NewTestLogger()),
	)

	descriptors, err := s.Scan(context.Background(), module.KindJudge, module.TierLocal)
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}

func Test_Scanner_BuiltinTier_SortedAndIsolated(t *testing.T) {
	// Deliberately unsorted, with one broken options declaration in the
	// middle.
	units := []module.Unit{
		StubUnit{UnitName: "zulu", Variants: []string{"z"}},
		StubUnit{UnitName: "mike", OptionsErr: errors.New("declaration broken")},
		BareUnit{UnitName: "alpha"},
	}
	s := NewScanner(
		WithBuiltins(func(kind module.Kind) []module.Unit {
			if kind != module.KindAttack {
				return nil
			}
			return units
		}),
		WithLogger(NewTestLogger()),
	)

	descriptors, err := s.Scan(context.Background(), module.KindAttack, module.TierBuiltIn)
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	assert.Equal(t, "alpha", descriptors[0].Name)
	assert.Equal(t, "mike", descriptors[1].Name)
	assert.Equal(t, "zulu", descriptors[2].Name)

	assert.False(t, descriptors[0].Errored)
	assert.True(t, descriptors[1].Errored)
	assert.Nil(t, descriptors[1].Handle)

	// The broken sibling does not disturb the well-formed ones.
	assert.False(t, descriptors[2].Errored)
	assert.Equal(t, []string{"z"}, descriptors[2].Options)
}

func Test_Scanner_WellFormedAndMalformedCounts(t *testing.T) {
	loader := &StubLoader{
		Units: map[string]module.Unit{
			"good1": BareUnit{UnitName: "good1"},
			"good2": StubUnit{UnitName: "good2"},
			"bad2":  StubUnit{UnitName: "bad2", PanicOnOptions: true},
		},
		Errs: map[string]error{
			"bad1": errors.New("no such import"),
		},
	}
	s, dir := localScanner(t, loader)
	for _, name := range []string{"good1.wasm", "good2.wasm", "bad1.wasm", "bad2.wasm"} {
		writeUnitFile(t, dir, name)
	}

	descriptors, err := s.Scan(context.Background(), module.KindPlugin, module.TierLocal)
	require.NoError(t, err)
	require.Len(t, descriptors, 4)

	errored := 0
	for _, d := range descriptors {
		if d.Errored {
			errored++
		}
	}
	assert.Equal(t, 2, errored)
}

func Test_Scanner_UnknownTier(t *testing.T) {
	s := NewScanner(WithLogger(NewTestLogger()))
	_, err := s.Scan(context.Background(), module.KindPlugin, module.Tier("remote"))
	assert.Error(t, err)
}
