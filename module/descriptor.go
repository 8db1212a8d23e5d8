package module

// Metadata is the normalized output of metadata extraction. The zero value
// carries the spec-defined defaults for a unit that declares nothing.
type Metadata struct {
	// Options holds the declared option variants. The first entry, when
	// present, is the implicit default variant.
	Options []string

	// UsesExternalModel reports whether the unit calls an external model
	// service.
	UsesExternalModel bool

	// Tags classifies the unit.
	Tags []Tag

	// Description is the human-readable description.
	Description string
}

// Descriptor describes one discovered extension unit, whether or not it
// loaded successfully.
type Descriptor struct {
	Name string
	Kind Kind
	Tier Tier

	Metadata

	// Handle is the loaded unit. Nil when loading or metadata extraction
	// failed; the descriptor then has Errored set and zero-value metadata.
	Handle Unit

	// Errored marks a unit that failed to load or failed metadata
	// extraction. Errored descriptors remain listable but cannot be
	// executed.
	Errored bool
}

// DefaultOption returns the default (first declared) option variant.
func (d Descriptor) DefaultOption() (string, bool) {
	if len(d.Options) == 0 {
		return "", false
	}
	return d.Options[0], true
}
