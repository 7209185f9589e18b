// Where: internal/workspace/packages_test.go
// What: Tests for package lookup.
// Why: Validation gates every package-selecting build.
package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func writePackage(t *testing.T, root string, rel string, markers ...string) string {
	t.Helper()
	dir := filepath.Join(root, rel)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, marker := range markers {
		if err := os.WriteFile(filepath.Join(dir, marker), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestFindPackageDirect(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "nav_core", MarkerManifest, MarkerCMake)

	rel, err := FindPackage(root, "nav_core", LookupExact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel != "nav_core" {
		t.Fatalf("unexpected path: %q", rel)
	}
}

func TestFindPackageUnderSrc(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, filepath.Join("src", "nav_core"), MarkerManifest, MarkerCMake)

	rel, err := FindPackage(root, "nav_core", LookupExact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel != filepath.Join("src", "nav_core") {
		t.Fatalf("unexpected path: %q", rel)
	}
}

func TestFindPackageRecursive(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, filepath.Join("src", "drivers", "lidar", "nav_core"), MarkerManifest, MarkerCMake)

	if _, err := FindPackage(root, "nav_core", LookupExact); err == nil {
		t.Fatalf("exact policy must not search the tree")
	}

	rel, err := FindPackage(root, "nav_core", LookupRecursive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel != filepath.Join("src", "drivers", "lidar", "nav_core") {
		t.Fatalf("unexpected path: %q", rel)
	}
}

func TestFindPackageRequiresBothMarkers(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "half_pkg", MarkerManifest)

	if _, err := FindPackage(root, "half_pkg", LookupRecursive); err == nil {
		t.Fatalf("expected error when a marker is missing")
	}
}

func TestFindPackageSkipsOutputDirs(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, filepath.Join(BuildDir, "ghost"), MarkerManifest, MarkerCMake)

	if _, err := FindPackage(root, "ghost", LookupRecursive); err == nil {
		t.Fatalf("packages under %s/ must be ignored", BuildDir)
	}
}

func TestFindPackageMissing(t *testing.T) {
	if _, err := FindPackage(t.TempDir(), "ghost", LookupRecursive); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestFindPackageEmptyName(t *testing.T) {
	if _, err := FindPackage(t.TempDir(), "", LookupRecursive); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
