package module

import "context"

// Unit is the minimal surface every loaded extension unit exposes.
type Unit interface {
	// Name returns the unit name, unique within its (kind, tier) pair.
	Name() string
}

// OptionsProvider is the optional options declaration of a unit.
// Units that do not implement it default to no variants and no
// external-model usage.
type OptionsProvider interface {
	// Options returns the declared option variants (first is the default)
	// and whether the unit calls an external model service.
	Options() (variants []string, usesModel bool, err error)
}

// Describer is the optional description declaration of a unit.
// Units that do not implement it default to no tags and an empty
// description.
type Describer interface {
	// Describe returns the unit's classification tags and description.
	Describe() (tags []Tag, description string, err error)
}

// Transformer is the entry point of a plugin-kind unit. It rewrites the
// running text of a chain. A transformer may append records to log as an
// observability side channel; it must never remove or reorder existing
// records (the ContextLog type enforces this).
type Transformer interface {
	Unit
	Transform(ctx context.Context, text string, log *ContextLog, opts Options) (string, error)
}

// Target is the entry point of a target-kind unit: it submits input to
// the system under test and returns the response. What happens inside
// (network calls, retries, timeouts) is the target's own business.
type Target interface {
	Unit
	ProcessInput(ctx context.Context, input string, opts Options) (string, error)
}

// Judge is the entry point of a judge-kind unit: it scores a response
// against the input that produced it.
type Judge interface {
	Unit
	Evaluate(ctx context.Context, input, response string, opts Options) (bool, error)
}

// Attack is the entry point of an attack-kind unit: it produces a payload
// from a seed text.
type Attack interface {
	Unit
	Payload(ctx context.Context, seed string, log *ContextLog, opts Options) (string, error)
}
