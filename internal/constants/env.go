// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Config file location override.
	EnvConfigPath = "COLBUILD_CONFIG"

	// Per-field config overrides. Boolean values accept the forms
	// understood by strconv.ParseBool.
	EnvSymlink       = "COLBUILD_SYMLINK"
	EnvVerbose       = "COLBUILD_VERBOSE"
	EnvNoWarning     = "COLBUILD_NO_WARNING"
	EnvLegacyArgs    = "COLBUILD_LEGACY_ARGS"
	EnvPackageLookup = "COLBUILD_PACKAGE_LOOKUP"
)
