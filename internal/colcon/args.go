// Where: internal/colcon/args.go
// What: Translation of build options into colcon argument tokens.
// Why: Keep the generated invocation deterministic and testable.
package colcon

// Fixed markers understood by colcon and CMake. Later occurrences of
// overlapping --cmake-args groups override earlier ones inside colcon, so the
// emission order below is part of the contract.
const (
	FlagSymlinkInstall = "--symlink-install"
	FlagEventHandlers  = "--event-handlers"
	FlagCMakeArgs      = "--cmake-args"
	FlagPackagesSelect = "--packages-select"

	verboseHandler = "console_direct+"
	debugDef       = "-DCMAKE_BUILD_TYPE=Debug"
	releaseDef     = "-DCMAKE_BUILD_TYPE=Release"
	noWarnCXXDef   = "-DCMAKE_CXX_FLAGS=-w"
	noWarnCDef     = "-DCMAKE_C_FLAGS=-w"
)

// Option is a single KEY=VALUE CMake definition passed through verbatim.
type Option struct {
	Key   string
	Value string
}

// Options captures everything that shapes a colcon build invocation.
type Options struct {
	Package    string
	Debug      bool
	Symlink    bool
	Verbose    bool
	NoWarning  bool
	Extra      []Option
	LegacyArgs bool
}

// BuildArgs renders the ordered token list appended to "colcon build".
// Order: symlink install, verbose event handler, debug definition, then a
// single aggregated --cmake-args group carrying the release definition,
// warning suppression, and the extra definitions.
func BuildArgs(opts Options) []string {
	if opts.LegacyArgs {
		return legacyBuildArgs(opts)
	}

	var args []string
	if opts.Symlink {
		args = append(args, FlagSymlinkInstall)
	}
	if opts.Verbose {
		args = append(args, FlagEventHandlers, verboseHandler)
	}
	if opts.Debug {
		args = append(args, FlagCMakeArgs, debugDef)
	}

	defs := aggregatedDefs(opts)
	if len(defs) > 0 {
		args = append(args, FlagCMakeArgs)
		args = append(args, defs...)
	}
	return args
}

// aggregatedDefs collects the contents of the aggregated --cmake-args group.
// The group is emitted when the build is a release build, when warnings are
// suppressed, or when extra definitions were supplied.
func aggregatedDefs(opts Options) []string {
	if opts.Debug && !opts.NoWarning && len(opts.Extra) == 0 {
		return nil
	}
	var defs []string
	if !opts.Debug {
		defs = append(defs, releaseDef)
	}
	if opts.NoWarning {
		defs = append(defs, noWarnCXXDef, noWarnCDef)
	}
	for _, opt := range opts.Extra {
		defs = append(defs, "-D"+opt.Key+"="+opt.Value)
	}
	return defs
}

// legacyBuildArgs reproduces the older script's output: no pass-through
// definitions and warning suppression always applied.
func legacyBuildArgs(opts Options) []string {
	var args []string
	if opts.Symlink {
		args = append(args, FlagSymlinkInstall)
	}
	if opts.Verbose {
		args = append(args, FlagEventHandlers, verboseHandler)
	}
	if opts.Debug {
		args = append(args, FlagCMakeArgs, debugDef)
		args = append(args, FlagCMakeArgs, noWarnCXXDef, noWarnCDef)
	} else {
		args = append(args, FlagCMakeArgs, releaseDef, noWarnCXXDef, noWarnCDef)
	}
	return args
}
