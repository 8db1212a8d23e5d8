package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// Reverse flips the text character-by-character or word-by-word.
type Reverse struct{}

func (Reverse) Name() string { return "reverse" }

func (Reverse) Options() ([]string, bool, error) {
	return []string{"characters", "words"}, false, nil
}

func (Reverse) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagStructural},
		"Reverses the text by characters or by words.", nil
}

func (Reverse) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	switch variant := opts.Variant([]string{"characters", "words"}); variant {
	case "characters":
		runes := []rune(text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	case "words":
		words := strings.Fields(text)
		for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
			words[i], words[j] = words[j], words[i]
		}
		return strings.Join(words, " "), nil
	default:
		return "", fmt.Errorf("reverse: unknown variant %q", variant)
	}
}
