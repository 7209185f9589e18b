// Where: internal/colcon/builder.go
// What: Concrete builder adapter.
// Why: Satisfy the app's Builder interface with a real command runner.
package colcon

import "context"

// ToolBuilder invokes colcon through a CommandRunner.
type ToolBuilder struct {
	Runner CommandRunner
}

// NewToolBuilder returns a builder backed by the given runner.
func NewToolBuilder(runner CommandRunner) ToolBuilder {
	return ToolBuilder{Runner: runner}
}

// Build implements the app-level Builder interface.
func (b ToolBuilder) Build(ctx context.Context, dir string, opts Options) error {
	return Build(ctx, b.Runner, dir, opts)
}
