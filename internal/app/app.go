// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/hayate-robotics/colbuild/internal/colcon"
	"github.com/hayate-robotics/colbuild/internal/config"
	"github.com/hayate-robotics/colbuild/internal/ui"
	"github.com/hayate-robotics/colbuild/internal/version"
	"github.com/hayate-robotics/colbuild/internal/workspace"
)

// Builder runs the external build tool for the assembled options.
type Builder interface {
	Build(ctx context.Context, dir string, opts colcon.Options) error
}

// Cleaner removes generated workspace output.
type Cleaner interface {
	Clean(root string) (workspace.CleanResult, error)
}

// Dependencies holds all injected dependencies required for command
// execution, enabling fakes in tests.
type Dependencies struct {
	WorkspaceDir string
	Out          io.Writer
	Context      context.Context
	Builder      Builder
	Cleaner      Cleaner
	FindPackage  func(root, pkg string, policy workspace.LookupPolicy) (string, error)
	LoadConfig   func(root string) (config.Config, error)
}

// Run parses args, validates the request, and dispatches exactly one
// operation. Returns 0 on success or help, 1 on any failure.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.FindPackage == nil {
		deps.FindPackage = workspace.FindPackage
	}
	if deps.LoadConfig == nil {
		deps.LoadConfig = config.Load
	}
	console := ui.New(out)

	req, err := parseArgs(args)
	if err != nil {
		return exitUsage(out, err)
	}
	if req.Help {
		fmt.Fprint(out, usageText)
		return 0
	}
	if req.Version {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	cfg, err := deps.LoadConfig(deps.WorkspaceDir)
	if err != nil {
		return exitWithError(out, err)
	}
	if cfg.LegacyArgs && len(req.Extra) > 0 {
		return exitUsage(out, usageErrorf("Unknown option: -o"))
	}
	applyConfigDefaults(&req, cfg)

	if req.Package != "" {
		if _, err := deps.FindPackage(deps.WorkspaceDir, req.Package, cfg.Lookup()); err != nil {
			return exitWithError(out, err)
		}
	}

	opts := buildOptions(req, cfg)

	if req.DryRun {
		fmt.Fprintln(out, colcon.Render(opts))
		return 0
	}

	loadDotEnv(deps.WorkspaceDir, console)

	switch req.Action {
	case ActionClean:
		return runClean(deps, console)
	case ActionBuild:
		return runBuild(deps, console, opts)
	case ActionCleanBuild:
		if code := runClean(deps, console); code != 0 {
			return code
		}
		return runBuild(deps, console, opts)
	}
	return exitUsage(out, usageErrorf("no action specified"))
}

// applyConfigDefaults merges workspace defaults into the request. Flags only
// ever enable behavior, so merging is a boolean or.
func applyConfigDefaults(req *Request, cfg config.Config) {
	req.Symlink = req.Symlink || cfg.Defaults.Symlink
	req.Verbose = req.Verbose || cfg.Defaults.Verbose
	req.NoWarning = req.NoWarning || cfg.Defaults.NoWarning

	if len(cfg.CMakeDefs) == 0 {
		return
	}
	keys := make([]string, 0, len(cfg.CMakeDefs))
	for key := range cfg.CMakeDefs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	defs := make([]colcon.Option, 0, len(keys)+len(req.Extra))
	for _, key := range keys {
		defs = append(defs, colcon.Option{Key: key, Value: cfg.CMakeDefs[key]})
	}
	// config definitions come first so per-run -o pairs can override them
	req.Extra = append(defs, req.Extra...)
}

func buildOptions(req Request, cfg config.Config) colcon.Options {
	return colcon.Options{
		Package:    req.Package,
		Debug:      req.Debug,
		Symlink:    req.Symlink,
		Verbose:    req.Verbose,
		NoWarning:  req.NoWarning,
		Extra:      req.Extra,
		LegacyArgs: cfg.LegacyArgs,
	}
}

// loadDotEnv loads a .env file from the workspace when present so the build
// tool inherits it.
func loadDotEnv(dir string, console *ui.Console) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		console.Warn(fmt.Sprintf("failed to load %s: %v", path, err))
	}
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func exitUsage(out io.Writer, err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(out, usage.msg)
	} else {
		fmt.Fprintln(out, err)
	}
	fmt.Fprint(out, usageText)
	return 1
}
