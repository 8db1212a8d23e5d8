package plugins

import (
	"context"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

var leetReplacer = strings.NewReplacer(
	"a", "4", "A", "4",
	"e", "3", "E", "3",
	"i", "1", "I", "1",
	"o", "0", "O", "0",
	"s", "5", "S", "5",
	"t", "7", "T", "7",
)

// Leetspeak substitutes common letters with digits. It declares no
// options.
type Leetspeak struct{}

func (Leetspeak) Name() string { return "leetspeak" }

func (Leetspeak) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagObfuscation},
		"Substitutes common letters with leetspeak digits.", nil
}

func (Leetspeak) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	return leetReplacer.Replace(text), nil
}
