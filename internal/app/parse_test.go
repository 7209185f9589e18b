// Where: internal/app/parse_test.go
// What: Tests for the legacy flag grammar.
// Why: The token grammar is the compatibility contract.
package app

import (
	"testing"

	"github.com/hayate-robotics/colbuild/internal/colcon"
)

func TestParseActions(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		action Action
		debug  bool
		pkg    string
	}{
		{"build short", []string{"-b"}, ActionBuild, false, ""},
		{"build long", []string{"--build"}, ActionBuild, false, ""},
		{"build with package", []string{"-b", "nav_core"}, ActionBuild, false, "nav_core"},
		{"clean-build", []string{"-cb", "nav_core"}, ActionCleanBuild, false, "nav_core"},
		{"build debug", []string{"-bd"}, ActionBuild, true, ""},
		{"clean-build debug", []string{"-cbd", "nav_core"}, ActionCleanBuild, true, "nav_core"},
		{"clean", []string{"-c"}, ActionClean, false, ""},
		{"fallback positional", []string{"nav_core", "-b"}, ActionBuild, false, "nav_core"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := parseArgs(tc.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Action != tc.action {
				t.Fatalf("unexpected action: %v", req.Action)
			}
			if req.Debug != tc.debug {
				t.Fatalf("unexpected debug: %v", req.Debug)
			}
			if req.Package != tc.pkg {
				t.Fatalf("unexpected package: %q", req.Package)
			}
		})
	}
}

func TestParseActionDoesNotConsumeFlagAsPackage(t *testing.T) {
	req, err := parseArgs([]string{"-b", "-v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Package != "" {
		t.Fatalf("flag consumed as package: %q", req.Package)
	}
	if !req.Verbose {
		t.Fatalf("expected verbose")
	}
}

func TestParseModifiers(t *testing.T) {
	req, err := parseArgs([]string{"-b", "-s", "-v", "-nw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Symlink || !req.Verbose || !req.NoWarning {
		t.Fatalf("modifiers not all set: %+v", req)
	}
}

func TestParseOptions(t *testing.T) {
	req, err := parseArgs([]string{"-bd", "-o", "X=1 Y=2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []colcon.Option{{Key: "X", Value: "1"}, {Key: "Y", Value: "2"}}
	if len(req.Extra) != len(want) {
		t.Fatalf("unexpected options: %+v", req.Extra)
	}
	for i, opt := range want {
		if req.Extra[i] != opt {
			t.Fatalf("option %d: got %+v, want %+v", i, req.Extra[i], opt)
		}
	}
}

func TestParseOptionValueMayContainEquals(t *testing.T) {
	req, err := parseArgs([]string{"-b", "-o", "CMAKE_CXX_FLAGS=-DFOO=bar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Extra) != 1 {
		t.Fatalf("unexpected options: %+v", req.Extra)
	}
	if req.Extra[0].Key != "CMAKE_CXX_FLAGS" || req.Extra[0].Value != "-DFOO=bar" {
		t.Fatalf("unexpected option: %+v", req.Extra[0])
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no action", []string{"-v", "-s"}},
		{"empty args", nil},
		{"unknown option", []string{"-b", "--frobnicate"}},
		{"second positional", []string{"-b", "pkg", "other"}},
		{"missing opt argument", []string{"-b", "-o"}},
		{"opt pair without equals", []string{"-b", "-o", "X=1 Y"}},
		{"conflicting actions", []string{"-b", "-c"}},
		{"duplicate action", []string{"-b", "-bd"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseArgs(tc.args); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestParseHelpShortCircuits(t *testing.T) {
	req, err := parseArgs([]string{"-h", "--frobnicate"})
	if err != nil {
		t.Fatalf("help must win over later junk: %v", err)
	}
	if !req.Help {
		t.Fatalf("expected help request")
	}
}

func TestParseVersionShortCircuits(t *testing.T) {
	req, err := parseArgs([]string{"--version", "--frobnicate"})
	if err != nil {
		t.Fatalf("version must win over later junk: %v", err)
	}
	if !req.Version {
		t.Fatalf("expected version request")
	}
}

func TestParseDryRun(t *testing.T) {
	req, err := parseArgs([]string{"-b", "-n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.DryRun {
		t.Fatalf("expected dry run")
	}
}
