package wasm

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// hostAPIConstraint is the guest ABI range this host accepts. Units
// declaring an api_version outside it fail to load.
var hostAPIConstraint = mustConstraint("^1.0")

// APIVersionSupported checks a unit's declared ABI version against the
// host's supported range.
func APIVersionSupported(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid api_version %q: %w", version, err)
	}
	if !hostAPIConstraint.Check(v) {
		return fmt.Errorf("api_version %s outside supported range %s", version, hostAPIConstraint)
	}
	return nil
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}
