package pipeline

import (
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// ParseOptions parses a raw option-configuration string into a flat
// key=value map. Pairs are separated by whitespace; a token without '='
// becomes a key with an empty value. The reserved variant key selects the
// active declared option; every other key is forwarded verbatim to the
// unit.
func ParseOptions(raw string) module.Options {
	opts := make(module.Options)
	for _, token := range strings.Fields(raw) {
		key, value, _ := strings.Cut(token, "=")
		if key == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}
