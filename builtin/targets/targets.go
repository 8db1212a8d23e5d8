// Package targets holds the bundled targets.
package targets

import "github.com/gauntletsec/gauntlet/module"

// All returns the bundled target units.
func All() []module.Unit {
	return []module.Unit{Echo{}}
}
