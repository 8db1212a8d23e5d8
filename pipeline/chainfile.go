package pipeline

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gauntletsec/gauntlet/module"
)

// ChainFile is a stored pipeline definition: the segments of a
// multi-part prompt and the optional global chain run over their joined
// output.
type ChainFile struct {
	Segments []Segment `yaml:"segments"`
	Global   []StepRef `yaml:"global,omitempty"`
}

// ParseChainFile unmarshals a YAML pipeline definition.
func ParseChainFile(data []byte) (*ChainFile, error) {
	var f ChainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse chain file: %w", err)
	}
	return &f, nil
}

// LoadChainFile reads and parses a YAML pipeline definition from disk.
func LoadChainFile(path string) (*ChainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	return ParseChainFile(data)
}

// Compose runs the stored pipeline through the engine.
func (f *ChainFile) Compose(ctx context.Context, e *Engine, log *module.ContextLog) (string, error) {
	return e.ComposeSegments(ctx, f.Segments, f.Global, log)
}
