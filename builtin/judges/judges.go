// Package judges holds the bundled judges.
package judges

import "github.com/gauntletsec/gauntlet/module"

// All returns the bundled judge units.
func All() []module.Unit {
	return []module.Unit{Canary{}, ModelGraded{}, Regex{}}
}
