// Where: internal/workspace/packages.go
// What: Buildable package lookup and validation.
// Why: Reject unknown package names before the build tool ever runs.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Marker files whose joint presence identifies a buildable package directory.
const (
	MarkerManifest = "package.xml"
	MarkerCMake    = "CMakeLists.txt"
)

// LookupPolicy selects how far package lookup searches.
type LookupPolicy string

const (
	// LookupRecursive checks the workspace root, src/, then walks the whole
	// tree. This is the canonical policy.
	LookupRecursive LookupPolicy = "recursive"
	// LookupExact checks only the workspace root and src/.
	LookupExact LookupPolicy = "exact"
)

// SourceDir is the conventional subdirectory holding package sources.
const SourceDir = "src"

// output directories skipped during recursive lookup
var prunedDirs = map[string]bool{
	BuildDir:   true,
	InstallDir: true,
	LogDir:     true,
}

// FindPackage locates a package directory named pkg under root according to
// policy and verifies it carries both marker files. The returned path is
// relative to root.
func FindPackage(root, pkg string, policy LookupPolicy) (string, error) {
	if pkg == "" {
		return "", fmt.Errorf("package name is empty")
	}

	for _, candidate := range []string{pkg, filepath.Join(SourceDir, pkg)} {
		if isPackageDir(filepath.Join(root, candidate)) {
			return candidate, nil
		}
	}

	if policy == LookupRecursive {
		if found, ok := searchTree(root, pkg); ok {
			return found, nil
		}
	}

	return "", fmt.Errorf("package %q not found in workspace (no directory with %s and %s)", pkg, MarkerManifest, MarkerCMake)
}

// searchTree walks the workspace looking for a directory named pkg with both
// markers, skipping generated output and hidden directories.
func searchTree(root, pkg string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || !entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if path != root && (prunedDirs[name] || (len(name) > 1 && name[0] == '.')) {
			return filepath.SkipDir
		}
		if name == pkg && isPackageDir(path) {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil {
				found = rel
				return filepath.SkipAll
			}
		}
		return nil
	})
	return found, found != ""
}

func isPackageDir(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, marker := range []string{MarkerManifest, MarkerCMake} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
			return false
		}
	}
	return true
}
