package registry

import (
	"context"

	"github.com/gauntletsec/gauntlet/module"
)

// Source produces the descriptors for one (kind, tier) pair. It is
// implemented by discovery.Scanner.
type Source interface {
	Scan(ctx context.Context, kind module.Kind, tier module.Tier) ([]module.Descriptor, error)
}
