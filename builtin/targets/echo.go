package targets

import (
	"context"

	"github.com/gauntletsec/gauntlet/module"
)

// Echo returns its input unchanged. Useful for pipeline dry runs and for
// judging the composed prompt itself.
type Echo struct{}

func (Echo) Name() string { return "echo" }

func (Echo) Describe() ([]module.Tag, string, error) {
	return nil, "Returns the input unchanged.", nil
}

func (Echo) ProcessInput(ctx context.Context, input string, opts module.Options) (string, error) {
	return input, nil
}
