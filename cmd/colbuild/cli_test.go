// Where: cmd/colbuild/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"context"
	"errors"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "/workspace", nil
	}

	deps, err := buildDependencies(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.WorkspaceDir != "/workspace" {
		t.Fatalf("unexpected workspace dir: %s", deps.WorkspaceDir)
	}
	if deps.Builder == nil {
		t.Fatalf("expected builder")
	}
	if deps.Cleaner == nil {
		t.Fatalf("expected cleaner")
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "", errors.New("boom")
	}

	if _, err := buildDependencies(context.Background()); err == nil {
		t.Fatalf("expected error on getwd failure")
	}
}
