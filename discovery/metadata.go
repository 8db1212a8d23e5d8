package discovery

import (
	"fmt"

	"github.com/gauntletsec/gauntlet/module"
)

// Extract pulls the optional metadata declarations from a loaded unit.
// A unit that implements neither optional interface yields the zero-value
// Metadata. Any error or panic raised by a declaration makes the whole
// extraction fail; the scanner converts that into an errored descriptor.
func Extract(unit module.Unit) (meta module.Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			meta = module.Metadata{}
			err = fmt.Errorf("metadata declaration panicked: %v", r)
		}
	}()

	if provider, ok := unit.(module.OptionsProvider); ok {
		variants, usesModel, oerr := provider.Options()
		if oerr != nil {
			return module.Metadata{}, fmt.Errorf("options declaration: %w", oerr)
		}
		meta.Options = variants
		meta.UsesExternalModel = usesModel
	}

	if describer, ok := unit.(module.Describer); ok {
		tags, description, derr := describer.Describe()
		if derr != nil {
			return module.Metadata{}, fmt.Errorf("description declaration: %w", derr)
		}
		meta.Tags = tags
		meta.Description = description
	}

	return meta, nil
}
