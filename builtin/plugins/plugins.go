// Package plugins holds the bundled text-transformation plugins.
package plugins

import "github.com/gauntletsec/gauntlet/module"

// Note is the record bundled plugins append to the chain context log.
type Note struct {
	Plugin string
	Detail string
}

// All returns the bundled plugin units.
func All() []module.Unit {
	return []module.Unit{
		Base64{},
		Leetspeak{},
		Reverse{},
		Spaces{},
		Uppercase{},
	}
}
