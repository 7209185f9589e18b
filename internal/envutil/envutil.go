// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lookup returns the trimmed value of an environment variable and whether it
// was set to something non-empty.
func Lookup(name string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(name))
	return value, value != ""
}

// LookupBool parses an environment variable as a boolean.
// Unset or empty variables leave the target untouched.
func LookupBool(name string, target *bool) error {
	value, ok := Lookup(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: invalid boolean %q", name, value)
	}
	*target = parsed
	return nil
}

// LookupString copies an environment variable into target when set.
func LookupString(name string, target *string) {
	if value, ok := Lookup(name); ok {
		*target = value
	}
}
