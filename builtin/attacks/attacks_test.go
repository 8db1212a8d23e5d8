package attacks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauntletsec/gauntlet/module"
)

func Test_PromptStuffing(t *testing.T) {
	ctx := context.Background()

	t.Run("RepeatIsDefault", func(t *testing.T) {
		out, err := PromptStuffing{}.Payload(ctx, "do it", nil, module.Options{"n": "2"})
		require.NoError(t, err)
		assert.Equal(t, "do it do it", out)
	})

	t.Run("Pad", func(t *testing.T) {
		out, err := PromptStuffing{}.Payload(ctx, "do it", nil,
			module.Options{module.VariantKey: "pad", "n": "2"})
		require.NoError(t, err)
		assert.Equal(t, "do it please please", out)
	})

	t.Run("InvalidMultiplier", func(t *testing.T) {
		_, err := PromptStuffing{}.Payload(ctx, "x", nil, module.Options{"n": "zero"})
		assert.Error(t, err)

		_, err = PromptStuffing{}.Payload(ctx, "x", nil, module.Options{"n": "0"})
		assert.Error(t, err)
	})
}
