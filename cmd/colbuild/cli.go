// Where: cmd/colbuild/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/hayate-robotics/colbuild/internal/app"
	"github.com/hayate-robotics/colbuild/internal/colcon"
	"github.com/hayate-robotics/colbuild/internal/workspace"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
// The workspace root is the current working directory.
func buildDependencies(ctx context.Context) (app.Dependencies, error) {
	workspaceDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkspaceDir: workspaceDir,
		Out:          os.Stdout,
		Context:      ctx,
		Builder:      colcon.NewToolBuilder(colcon.ExecRunner{}),
		Cleaner:      workspace.DirCleaner{},
	}, nil
}
