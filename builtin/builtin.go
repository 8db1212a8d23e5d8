// Package builtin assembles the bundled extension library, the built-in
// provenance tier. The registration table is explicit: discovery
// enumerates it instead of reflecting over packages.
package builtin

import (
	"github.com/gauntletsec/gauntlet/builtin/attacks"
	"github.com/gauntletsec/gauntlet/builtin/judges"
	"github.com/gauntletsec/gauntlet/builtin/plugins"
	"github.com/gauntletsec/gauntlet/builtin/targets"
	"github.com/gauntletsec/gauntlet/module"
)

// Units returns the bundled units for a kind.
func Units(kind module.Kind) []module.Unit {
	switch kind {
	case module.KindPlugin:
		return plugins.All()
	case module.KindTarget:
		return targets.All()
	case module.KindJudge:
		return judges.All()
	case module.KindAttack:
		return attacks.All()
	default:
		return nil
	}
}
