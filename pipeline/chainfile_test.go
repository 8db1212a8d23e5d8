package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauntletsec/gauntlet/module"
)

const chainYAML = `
segments:
  - text: hello
    steps:
      - name: upper
  - text: world
global:
  - name: append_bang
    options: variant=plain
`

func Test_ParseChainFile(t *testing.T) {
	f, err := ParseChainFile([]byte(chainYAML))
	require.NoError(t, err)

	require.Len(t, f.Segments, 2)
	assert.Equal(t, "hello", f.Segments[0].Text)
	assert.Equal(t, []StepRef{{Name: "upper"}}, f.Segments[0].Steps)
	assert.Empty(t, f.Segments[1].Steps)
	assert.Equal(t, []StepRef{{Name: "append_bang", RawOptions: "variant=plain"}}, f.Global)
}

func Test_ParseChainFile_Invalid(t *testing.T) {
	_, err := ParseChainFile([]byte("segments: {not: [valid"))
	assert.Error(t, err)
}

func Test_LoadChainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chainYAML), 0o600))

	f, err := LoadChainFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Segments, 2)

	_, err = LoadChainFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func Test_ChainFile_Compose(t *testing.T) {
	upper := &fakePlugin{name: "upper", fn: func(text string, log *module.ContextLog, opts module.Options) (string, error) {
		return strings.ToUpper(text), nil
	}}
	bang := &fakePlugin{name: "append_bang", fn: func(text string, log *module.ContextLog, opts module.Options) (string, error) {
		return text + "!", nil
	}}
	e := engineWith(t,
		pluginDescriptor(module.TierBuiltIn, upper),
		pluginDescriptor(module.TierBuiltIn, bang),
	)

	f, err := ParseChainFile([]byte(chainYAML))
	require.NoError(t, err)

	out, err := f.Compose(context.Background(), e, nil)
	require.NoError(t, err)
	assert.Equal(t, "HELLO world!", out)
}
