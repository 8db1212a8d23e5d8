// Package module defines the domain model shared by discovery, the registry
// and the chain engine: capability kinds, provenance tiers, descriptors and
// the interfaces an extension unit may implement.
package module

import "fmt"

// Kind identifies one of the four closed extension categories.
type Kind string

const (
	KindJudge  Kind = "judge"
	KindTarget Kind = "target"
	KindPlugin Kind = "plugin"
	KindAttack Kind = "attack"
)

// AllKinds returns every capability kind in display order.
func AllKinds() []Kind {
	return []Kind{KindJudge, KindTarget, KindPlugin, KindAttack}
}

// ParseKind converts a string (singular or plural form) into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if s == string(k) || s == k.DirName() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown capability kind: %q", s)
}

// DirName returns the provenance root name for the kind. Both the
// project-relative local directory and the bundled library package
// use this name.
func (k Kind) DirName() string {
	return string(k) + "s"
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Tier identifies where an extension unit came from.
type Tier string

const (
	// TierLocal marks units supplied by the user's project directory.
	TierLocal Tier = "local"

	// TierBuiltIn marks units bundled with the library.
	TierBuiltIn Tier = "built-in"
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// Tag is a classification tag attached to a unit by its description
// declaration. Tags are free-form; the bundled library uses the well-known
// values below.
type Tag string

const (
	TagEncoding    Tag = "encoding"
	TagObfuscation Tag = "obfuscation"
	TagStructural  Tag = "structural"
	TagCase        Tag = "case"
	TagScoring     Tag = "scoring"
	TagModel       Tag = "model"
)
