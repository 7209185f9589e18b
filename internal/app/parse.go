// Where: internal/app/parse.go
// What: Legacy flag-grammar parser.
// Why: The short-flag grammar is the compatibility surface; parse it into an
// immutable request instead of accumulating global state.
package app

import (
	"fmt"
	"strings"

	"github.com/hayate-robotics/colbuild/internal/colcon"
)

// Action is the single operation selected by an invocation.
type Action int

const (
	ActionNone Action = iota
	ActionBuild
	ActionCleanBuild
	ActionClean
)

// Request is the parsed form of one invocation. It is built once by
// parseArgs and passed by value from there on.
type Request struct {
	Action    Action
	Package   string
	Debug     bool
	Symlink   bool
	Verbose   bool
	NoWarning bool
	Extra     []colcon.Option
	DryRun    bool
	Help      bool
	Version   bool
}

// usageError marks errors that should be followed by the usage text.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// parseArgs consumes tokens left to right. -h and --version short-circuit;
// everything else accumulates into the request. Order is free except that an
// action flag may capture the immediately following token as the package.
func parseArgs(args []string) (Request, error) {
	var req Request

	for i := 0; i < len(args); i++ {
		token := args[i]
		switch token {
		case "-h", "--help":
			req.Help = true
			return req, nil
		case "--version":
			req.Version = true
			return req, nil
		case "-b", "--build":
			if err := req.setAction(ActionBuild, false); err != nil {
				return req, err
			}
			i = req.capturePackage(args, i)
		case "-cb", "--clean-build":
			if err := req.setAction(ActionCleanBuild, false); err != nil {
				return req, err
			}
			i = req.capturePackage(args, i)
		case "-bd", "--build-debug":
			if err := req.setAction(ActionBuild, true); err != nil {
				return req, err
			}
			i = req.capturePackage(args, i)
		case "-cbd", "--clean-build-debug":
			if err := req.setAction(ActionCleanBuild, true); err != nil {
				return req, err
			}
			i = req.capturePackage(args, i)
		case "-c", "--clean":
			if err := req.setAction(ActionClean, false); err != nil {
				return req, err
			}
		case "-s", "--symlink":
			req.Symlink = true
		case "-v", "--verbose":
			req.Verbose = true
		case "-nw", "--no-warning":
			req.NoWarning = true
		case "-n", "--dry-run":
			req.DryRun = true
		case "-o", "--opt":
			if i+1 >= len(args) {
				return req, usageErrorf("missing argument to %s", token)
			}
			extra, err := parseOptions(args[i+1])
			if err != nil {
				return req, err
			}
			req.Extra = append(req.Extra, extra...)
			i++
		default:
			if req.Package == "" && token != "" && !strings.HasPrefix(token, "-") {
				req.Package = token
				continue
			}
			return req, usageErrorf("Unknown option: %s", token)
		}
	}

	if req.Action == ActionNone {
		return req, usageErrorf("no action specified")
	}
	return req, nil
}

// setAction records the action exactly once; a second action flag is a typo,
// not an override.
func (r *Request) setAction(action Action, debug bool) error {
	if r.Action != ActionNone {
		return usageErrorf("conflicting action flags")
	}
	r.Action = action
	r.Debug = debug
	return nil
}

// capturePackage consumes args[i+1] as the package name when it is non-empty
// and not a flag. Returns the new loop index.
func (r *Request) capturePackage(args []string, i int) int {
	if i+1 < len(args) && args[i+1] != "" && !strings.HasPrefix(args[i+1], "-") {
		r.Package = args[i+1]
		return i + 1
	}
	return i
}

// parseOptions splits a single "-o" argument on whitespace into KEY=VALUE
// pairs. Each pair splits on the first '='; the value may contain '='.
func parseOptions(arg string) ([]colcon.Option, error) {
	var options []colcon.Option
	for _, pair := range strings.Fields(arg) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, usageErrorf("invalid option %q (want KEY=VALUE)", pair)
		}
		options = append(options, colcon.Option{Key: key, Value: value})
	}
	return options, nil
}
