// Where: internal/workspace/clean.go
// What: Workspace clean operation.
// Why: Remove generated output so clean-build starts from scratch.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generated output directories removed by Clean.
const (
	BuildDir   = "build"
	InstallDir = "install"
	LogDir     = "log"
)

// Stray file extensions swept from the workspace root, non-recursively.
var sweptExtensions = []string{".log", ".orig", ".tmp"}

// CleanResult reports what Clean removed and any non-fatal sweep failures.
type CleanResult struct {
	RemovedDirs  []string
	RemovedFiles []string
	SweepErrors  []error
}

// Clean removes the three output directories (fatal on failure, absent
// directories are fine) and then sweeps stray files from the root. Sweep
// failures are collected, not fatal.
func Clean(root string) (CleanResult, error) {
	var result CleanResult

	for _, dir := range []string{BuildDir, InstallDir, LogDir} {
		path := filepath.Join(root, dir)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return result, fmt.Errorf("remove %s: %w", dir, err)
		}
		result.RemovedDirs = append(result.RemovedDirs, dir)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		result.SweepErrors = append(result.SweepErrors, fmt.Errorf("read workspace root: %w", err))
		return result, nil
	}
	for _, entry := range entries {
		if entry.IsDir() || !sweepable(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(root, entry.Name())); err != nil {
			result.SweepErrors = append(result.SweepErrors, err)
			continue
		}
		result.RemovedFiles = append(result.RemovedFiles, entry.Name())
	}
	return result, nil
}

func sweepable(name string) bool {
	ext := filepath.Ext(name)
	for _, candidate := range sweptExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
