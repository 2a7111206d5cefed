package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-parbench/internal/ansi"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		messages []string
	}{
		{"value", "42\n", 42, nil},
		{"surrounding spaces", "  7 \n", 7, nil},
		{"empty line uses default", "\n", 10, nil},
		{"EOF uses default", "", 10, nil},
		{"value without newline", "5", 5, nil},
		{"lower bound", "1\n", 1, nil},
		{"upper bound", "100\n", 100, nil},
		{"out of range then valid", "0\n101\n50\n", 50, []string{"Value out of range (1..100)"}},
		{"non-numeric then valid", "abc\n3\n", 3, []string{"Invalid input"}},
		{"non-numeric then EOF", "abc\n", 10, []string{"Invalid input"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out, ansi.Palette{})

			got, err := p.Int("Value", 10, 1, 100)
			if err != nil {
				t.Fatalf("Int: %v", err)
			}
			if got != tt.want {
				t.Errorf("Int = %d, want %d", got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Value [10]: ") {
				t.Errorf("prompt = %q, want prefix %q", out.String(), "Value [10]: ")
			}
			for _, m := range tt.messages {
				if !strings.Contains(out.String(), m) {
					t.Errorf("output %q does not contain %q", out.String(), m)
				}
			}
		})
	}
}

func TestIntSequence(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("1000\n\n4\n"), &out, ansi.Palette{})

	want := []int{1000, 100, 4, 10}
	defs := []int{5, 100, 8, 10}
	for i := range want {
		got, err := p.Int("q", defs[i], 0, 100_000)
		if err != nil {
			t.Fatal(err)
		}
		if got != want[i] {
			t.Errorf("answer %d = %d, want %d", i, got, want[i])
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestIntReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{}, ansi.Palette{})
	if _, err := p.Int("Value", 1, 0, 2); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want read error", err)
	}
}
