package judges

import (
	"context"
	"errors"

	"github.com/gauntletsec/gauntlet/module"
)

// ModelGraded scores responses with an external model service. The call
// itself belongs to the configured endpoint; without one the judge fails
// rather than guessing.
type ModelGraded struct{}

func (ModelGraded) Name() string { return "model_graded" }

func (ModelGraded) Options() ([]string, bool, error) {
	return []string{"strict", "lenient"}, true, nil
}

func (ModelGraded) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagModel, module.TagScoring},
		"Scores responses with an external model; requires the endpoint option.", nil
}

func (ModelGraded) Evaluate(ctx context.Context, input, response string, opts module.Options) (bool, error) {
	if opts["endpoint"] == "" {
		return false, errors.New("model_graded: the endpoint option is required")
	}
	return false, errors.New("model_graded: external model grading is not configured in this build")
}
