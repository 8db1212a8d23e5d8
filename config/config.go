// Package config loads harness settings with defaults, an optional YAML
// file and GAUNTLET_-prefixed environment overrides, in that order.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gauntletsec/gauntlet/module"
)

// Config holds the settings the extensibility core consumes. Everything
// else (target endpoints, dataset paths) belongs to the tools built on
// top of it.
type Config struct {
	// LocalRoot is the project directory holding the local provenance
	// directories (judges/, targets/, plugins/, attacks/).
	LocalRoot string `koanf:"local_root"`

	// Kinds restricts which capability kinds are scanned. Empty means all.
	Kinds []string `koanf:"kinds"`

	// DisableBuiltins drops the bundled library tier from discovery.
	DisableBuiltins bool `koanf:"disable_builtins"`

	Log LogConfig `koanf:"log"`
}

// LogConfig configures the slog level.
type LogConfig struct {
	Level string `koanf:"level"`
}

// Load reads configuration. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	_ = k.Set("local_root", ".")
	_ = k.Set("disable_builtins", false)
	_ = k.Set("log.level", "info")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// GAUNTLET_LOCAL_ROOT -> local_root, GAUNTLET_LOG__LEVEL -> log.level
	if err := k.Load(env.Provider("GAUNTLET_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "GAUNTLET_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// KindList parses the configured kind names. Empty config means every
// kind.
func (c *Config) KindList() ([]module.Kind, error) {
	if len(c.Kinds) == 0 {
		return module.AllKinds(), nil
	}
	kinds := make([]module.Kind, 0, len(c.Kinds))
	for _, raw := range c.Kinds {
		kind, err := module.ParseKind(raw)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
