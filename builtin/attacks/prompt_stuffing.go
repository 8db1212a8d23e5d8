package attacks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// PromptStuffing builds a payload by repeating or padding the seed,
// burying safety instructions under sheer volume.
type PromptStuffing struct{}

func (PromptStuffing) Name() string { return "prompt_stuffing" }

func (PromptStuffing) Options() ([]string, bool, error) {
	return []string{"repeat", "pad"}, false, nil
}

func (PromptStuffing) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagStructural},
		"Repeats or pads the seed text; n controls the multiplier.", nil
}

func (PromptStuffing) Payload(ctx context.Context, seed string, log *module.ContextLog, opts module.Options) (string, error) {
	n := 3
	if raw, ok := opts["n"]; ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return "", fmt.Errorf("prompt_stuffing: invalid n %q", raw)
		}
		n = parsed
	}

	switch variant := opts.Variant([]string{"repeat", "pad"}); variant {
	case "repeat":
		parts := make([]string, n)
		for i := range parts {
			parts[i] = seed
		}
		return strings.Join(parts, " "), nil
	case "pad":
		return seed + strings.Repeat(" please", n), nil
	default:
		return "", fmt.Errorf("prompt_stuffing: unknown variant %q", variant)
	}
}
