// Where: internal/app/clean.go
// What: Clean action runner.
// Why: Delegate to the injected cleaner; directory failures are fatal,
// sweep failures are not.
package app

import (
	"fmt"

	"github.com/hayate-robotics/colbuild/internal/ui"
)

func runClean(deps Dependencies, console *ui.Console) int {
	if deps.Cleaner == nil {
		console.Error("clean: no cleaner configured")
		return 1
	}

	result, err := deps.Cleaner.Clean(deps.WorkspaceDir)
	if err != nil {
		console.Error(fmt.Sprintf("clean failed: %v", err))
		return 1
	}

	for _, dir := range result.RemovedDirs {
		console.Item(fmt.Sprintf("removed %s/", dir))
	}
	for _, file := range result.RemovedFiles {
		console.Item(fmt.Sprintf("removed %s", file))
	}
	for _, sweepErr := range result.SweepErrors {
		console.Warn(sweepErr.Error())
	}

	console.Success("workspace cleaned")
	return 0
}
