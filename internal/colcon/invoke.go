// Where: internal/colcon/invoke.go
// What: colcon build invocation.
// Why: Single place that shapes and runs the external build command.
package colcon

import (
	"context"
	"fmt"
	"strings"
)

// Binary is the external build orchestrator executed for every build.
const Binary = "colcon"

// CommandLine returns the full argument vector for a build, starting with the
// "build" verb. A non-empty package selects single-package mode via
// --packages-select; otherwise the whole workspace is built.
func CommandLine(opts Options) []string {
	args := []string{"build"}
	if opts.Package != "" {
		args = append(args, FlagPackagesSelect, opts.Package)
	}
	return append(args, BuildArgs(opts)...)
}

// Build runs colcon build in dir. The command's exit status is the only
// signal inspected; output streams through untouched.
func Build(ctx context.Context, runner CommandRunner, dir string, opts Options) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := runner.Run(ctx, dir, Binary, CommandLine(opts)...); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// Render formats a command line for display, e.g. in dry-run output.
func Render(opts Options) string {
	return Binary + " " + strings.Join(CommandLine(opts), " ")
}
