// Package pipeline composes registered plugin units into ordered,
// repeatable text-transformation chains, including the two-level
// (per-segment, then global) composition used when building multi-segment
// test prompts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
	"github.com/gauntletsec/gauntlet/registry"
)

// StepRef references one chain step: a plugin name plus its raw option
// string.
type StepRef struct {
	Name       string `yaml:"name"`
	RawOptions string `yaml:"options,omitempty"`
}

// Segment is one independently-chained piece of a multi-part prompt.
type Segment struct {
	Text  string    `yaml:"text"`
	Steps []StepRef `yaml:"steps,omitempty"`
}

// Engine applies chains against a single registry snapshot. Bind a new
// engine after a refresh; an engine never re-queries mid-chain, so a
// refresh racing an in-flight chain cannot produce a torn read.
type Engine struct {
	reg *registry.Registry
	log *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine over one registry snapshot.
func NewEngine(reg *registry.Registry, opts ...EngineOption) *Engine {
	e := &Engine{reg: reg, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply runs the chain strictly left to right over text. An empty chain
// returns text unchanged and leaves log untouched. Each step resolves its
// plugin (local shadows built-in), parses its options, injects the default
// variant when the plugin declares variants and none was selected, and
// feeds the step's output into the next step. A missing name or a failing
// transform aborts the remainder of the chain.
func (e *Engine) Apply(ctx context.Context, steps []StepRef, text string, log *module.ContextLog) (string, error) {
	for i, step := range steps {
		transformer, desc, err := e.resolveTransformer(step.Name)
		if err != nil {
			return "", err
		}

		opts := ParseOptions(step.RawOptions)
		if _, ok := opts[module.VariantKey]; !ok {
			if def, declared := desc.DefaultOption(); declared {
				opts[module.VariantKey] = def
			}
		}

		out, err := transformer.Transform(ctx, text, log, opts)
		if err != nil {
			return "", &module.TransformError{Step: i, Name: step.Name, Err: err}
		}

		e.log.Debug("pipeline: applied step",
			"step", i, "plugin", step.Name, "in", len(text), "out", len(out))
		text = out
	}
	return text, nil
}

// ComposeSegments builds a multi-segment artifact: one independent chain
// per segment, the results joined with a single space in segment order,
// then at most one global chain over the joined text. Segment chains
// always run to completion before the global chain begins; the global
// chain never runs per-segment.
func (e *Engine) ComposeSegments(ctx context.Context, segments []Segment, global []StepRef, log *module.ContextLog) (string, error) {
	parts := make([]string, 0, len(segments))
	for i, segment := range segments {
		out, err := e.Apply(ctx, segment.Steps, segment.Text, log)
		if err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		parts = append(parts, out)
	}

	return e.Apply(ctx, global, strings.Join(parts, " "), log)
}

func (e *Engine) resolveTransformer(name string) (module.Transformer, module.Descriptor, error) {
	desc, err := e.reg.Resolve(module.KindPlugin, name)
	if err != nil {
		return nil, desc, err
	}
	if desc.Errored || desc.Handle == nil {
		return nil, desc, fmt.Errorf("plugin %q: %w", name, module.ErrUnitFailed)
	}
	transformer, ok := desc.Handle.(module.Transformer)
	if !ok {
		return nil, desc, fmt.Errorf("plugin %q has no transform entry point: %w", name, module.ErrUnitFailed)
	}
	return transformer, desc, nil
}
