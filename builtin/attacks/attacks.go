// Package attacks holds the bundled attacks.
package attacks

import "github.com/gauntletsec/gauntlet/module"

// All returns the bundled attack units.
func All() []module.Unit {
	return []module.Unit{PromptStuffing{}}
}
