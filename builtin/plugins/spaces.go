package plugins

import (
	"context"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// Spaces inserts a space between every character, defeating exact-match
// keyword filters. It declares neither options nor a description.
type Spaces struct{}

func (Spaces) Name() string { return "spaces" }

func (Spaces) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	var b strings.Builder
	for i, r := range text {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
