package discovery

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gauntletsec/gauntlet/module"
)

// StubUnit implements the full optional metadata surface for testing.
type StubUnit struct {
	UnitName    string
	Variants    []string
	UsesModel   bool
	UnitTags    []module.Tag
	Description string

	OptionsErr     error
	DescribeErr    error
	PanicOnOptions bool
}

func (u StubUnit) Name() string { return u.UnitName }

func (u StubUnit) Options() ([]string, bool, error) {
	if u.PanicOnOptions {
		panic("options declaration exploded")
	}
	if u.OptionsErr != nil {
		return nil, false, u.OptionsErr
	}
	return u.Variants, u.UsesModel, nil
}

func (u StubUnit) Describe() ([]module.Tag, string, error) {
	if u.DescribeErr != nil {
		return nil, "", u.DescribeErr
	}
	return u.UnitTags, u.Description, nil
}

// BareUnit implements nothing beyond Name.
type BareUnit struct {
	UnitName string
}

func (u BareUnit) Name() string { return u.UnitName }

// StubLoader serves canned units keyed by unit name (file base name
// without extension).
type StubLoader struct {
	Units map[string]module.Unit
	Errs  map[string]error
}

func (l *StubLoader) Load(ctx context.Context, path string) (module.Unit, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err, ok := l.Errs[name]; ok {
		return nil, err
	}
	if unit, ok := l.Units[name]; ok {
		return unit, nil
	}
	return BareUnit{UnitName: name}, nil
}

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
