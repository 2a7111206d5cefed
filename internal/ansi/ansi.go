// Package ansi colors terminal output.
package ansi

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// SGR codes used by the CLI.
const (
	Reset   = "\x1b[0m"
	Bold    = "\x1b[1m"
	Dim     = "\x1b[2m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
)

// Palette applies SGR codes when Enabled and returns text untouched
// otherwise. The zero value is a disabled palette.
type Palette struct {
	Enabled bool
}

// Paint wraps s in the given codes followed by Reset.
func (p Palette) Paint(s string, codes ...string) string {
	if !p.Enabled || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ForFile returns a palette enabled only when f is a terminal, colors
// are not disabled, and NO_COLOR is unset.
func ForFile(f *os.File, disabled bool) Palette {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return Palette{}
	}
	return Palette{Enabled: IsTerminal(f)}
}
