// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize prefixes and indentation across commands.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a non-fatal problem.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}

// Error prints a failure message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "❌ %s\n", msg)
}

// Item prints an indented line.
// Example:    removed build/
func (c *Console) Item(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}
