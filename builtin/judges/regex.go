package judges

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/gauntletsec/gauntlet/module"
)

// Regex scores a response against a configured pattern.
type Regex struct{}

func (Regex) Name() string { return "regex" }

func (Regex) Options() ([]string, bool, error) {
	return []string{"partial", "full"}, false, nil
}

func (Regex) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagScoring},
		"Passes when the response matches the configured pattern.", nil
}

func (Regex) Evaluate(ctx context.Context, input, response string, opts module.Options) (bool, error) {
	pattern := opts["pattern"]
	if pattern == "" {
		return false, errors.New("regex: the pattern option is required")
	}
	if opts.Variant([]string{"partial", "full"}) == "full" {
		pattern = "^(?:" + pattern + ")$"
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("regex: %w", err)
	}
	return re.MatchString(response), nil
}
