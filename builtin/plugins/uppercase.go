package plugins

import (
	"context"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// Uppercase shouts the text.
type Uppercase struct{}

func (Uppercase) Name() string { return "uppercase" }

func (Uppercase) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagCase}, "Uppercases the whole text.", nil
}

func (Uppercase) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	return strings.ToUpper(text), nil
}
