// Package prompt reads bounded integers from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-parbench/internal/ansi"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	palette ansi.Palette
	eof     bool
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, palette ansi.Palette) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, palette: palette}
}

// Int asks for an integer in [lo, hi] and returns def on an empty answer
// or once input is exhausted. Non-numeric and out-of-range answers print
// a message and ask again. Read errors other than io.EOF are returned.
func (p *Prompter) Int(label string, def, lo, hi int) (int, error) {
	for {
		if p.eof {
			return def, nil
		}
		fmt.Fprintf(p.out, "%s [%d]: ", p.palette.Paint(label, ansi.Yellow), def)

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("prompt: reading %s: %w", label, err)
			}
			p.eof = true
			fmt.Fprintln(p.out)
		}

		text := strings.TrimSpace(line)
		if text == "" {
			return def, nil
		}

		v, convErr := strconv.Atoi(text)
		if convErr != nil {
			fmt.Fprintln(p.out, p.palette.Paint("Invalid input. Enter a number.", ansi.Red))
			continue
		}
		if v < lo || v > hi {
			fmt.Fprintln(p.out, p.palette.Paint(
				fmt.Sprintf("Value out of range (%d..%d). Try again.", lo, hi), ansi.Red))
			continue
		}
		return v, nil
	}
}
