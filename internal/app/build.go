// Where: internal/app/build.go
// What: Build action runner.
// Why: Delegate to the injected builder and report the outcome.
package app

import (
	"fmt"

	"github.com/hayate-robotics/colbuild/internal/colcon"
	"github.com/hayate-robotics/colbuild/internal/ui"
)

func runBuild(deps Dependencies, console *ui.Console, opts colcon.Options) int {
	if deps.Builder == nil {
		console.Error("build: no builder configured")
		return 1
	}

	if opts.Package != "" {
		console.Info(fmt.Sprintf("building package %s", opts.Package))
	} else {
		console.Info("building workspace")
	}

	if err := deps.Builder.Build(deps.Context, deps.WorkspaceDir, opts); err != nil {
		console.Error(err.Error())
		return 1
	}

	console.Success("build complete")
	return 0
}
