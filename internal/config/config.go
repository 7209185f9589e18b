// Where: internal/config/config.go
// What: Workspace config load helpers.
// Why: Let a workspace pin build defaults without repeating flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hayate-robotics/colbuild/internal/constants"
	"github.com/hayate-robotics/colbuild/internal/envutil"
	"github.com/hayate-robotics/colbuild/internal/workspace"
)

// FileName is the workspace config file looked up in the workspace root.
const FileName = "colbuild.yaml"

// Config represents the colbuild.yaml workspace configuration.
type Config struct {
	Version       int               `yaml:"version"`
	Defaults      Defaults          `yaml:"defaults,omitempty"`
	CMakeDefs     map[string]string `yaml:"cmake_defs,omitempty"`
	PackageLookup string            `yaml:"package_lookup,omitempty"`
	LegacyArgs    bool              `yaml:"legacy_args,omitempty"`
}

// Defaults mirror the modifier flags; a flag on the command line always wins.
type Defaults struct {
	Symlink   bool `yaml:"symlink,omitempty"`
	Verbose   bool `yaml:"verbose,omitempty"`
	NoWarning bool `yaml:"no_warning,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Version:       1,
		PackageLookup: string(workspace.LookupRecursive),
	}
}

// Path returns the config file location for a workspace root, honoring the
// COLBUILD_CONFIG override.
func Path(root string) string {
	if override, ok := envutil.Lookup(constants.EnvConfigPath); ok {
		if filepath.IsAbs(override) {
			return override
		}
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}
	return filepath.Join(root, FileName)
}

// Load reads, validates, and decodes the workspace config, then applies
// COLBUILD_* environment overrides. A missing file yields the defaults.
func Load(root string) (Config, error) {
	cfg := DefaultConfig()

	path := Path(root)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no config file, defaults apply
	case err != nil:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := Validate(raw); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.PackageLookup == "" {
			cfg.PackageLookup = string(workspace.LookupRecursive)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if cfg.PackageLookup != string(workspace.LookupRecursive) && cfg.PackageLookup != string(workspace.LookupExact) {
		return cfg, fmt.Errorf("invalid package_lookup %q (want %q or %q)", cfg.PackageLookup, workspace.LookupRecursive, workspace.LookupExact)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if err := envutil.LookupBool(constants.EnvSymlink, &cfg.Defaults.Symlink); err != nil {
		return err
	}
	if err := envutil.LookupBool(constants.EnvVerbose, &cfg.Defaults.Verbose); err != nil {
		return err
	}
	if err := envutil.LookupBool(constants.EnvNoWarning, &cfg.Defaults.NoWarning); err != nil {
		return err
	}
	if err := envutil.LookupBool(constants.EnvLegacyArgs, &cfg.LegacyArgs); err != nil {
		return err
	}
	envutil.LookupString(constants.EnvPackageLookup, &cfg.PackageLookup)
	return nil
}

// Lookup returns the package lookup policy selected by the config.
func (c Config) Lookup() workspace.LookupPolicy {
	if c.PackageLookup == string(workspace.LookupExact) {
		return workspace.LookupExact
	}
	return workspace.LookupRecursive
}
