package bench

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.N != 10_000_000 || cfg.MaxVal != 100 || cfg.PrintK != 10 || cfg.Reps != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Threads < 1 || cfg.Threads > 256 {
		t.Errorf("Threads = %d outside 1..256", cfg.Threads)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{N: 10, MaxVal: 2, PrintK: 0, Threads: 1, Reps: 1}

	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"valid minimum", func(*Config) {}, nil},
		{"valid maximum", func(c *Config) {
			*c = Config{N: 100_000_000, MaxVal: 1_000_000, PrintK: 200, Threads: 256, Reps: 50}
		}, nil},
		{"N too small", func(c *Config) { c.N = 9 }, []string{"N = 9"}},
		{"N too large", func(c *Config) { c.N = 100_000_001 }, []string{"N = 100000001"}},
		{"MAXVAL too small", func(c *Config) { c.MaxVal = 1 }, []string{"MAXVAL = 1"}},
		{"K negative", func(c *Config) { c.PrintK = -1 }, []string{"K = -1"}},
		{"threads zero", func(c *Config) { c.Threads = 0 }, []string{"threads = 0"}},
		{"reps too many", func(c *Config) { c.Reps = 51 }, []string{"reps = 51"}},
		{"several fields", func(c *Config) { c.Threads = 300; c.Reps = 0 }, []string{"threads = 300", "reps = 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()

			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			for _, f := range tt.fields {
				if !strings.Contains(err.Error(), f) {
					t.Errorf("error %q does not mention %q", err, f)
				}
			}
		})
	}
}

func TestBoundClamp(t *testing.T) {
	b := Bound{Name: "x", Min: 1, Max: 256}
	for _, tc := range []struct{ in, want int }{{0, 1}, {1, 1}, {64, 64}, {256, 256}, {1000, 256}} {
		if got := b.Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStateString(t *testing.T) {
	want := map[State]string{
		Configuring:      "configuring",
		Allocating:       "allocating",
		Generating:       "generating",
		WarmingUp:        "warming-up",
		Measuring:        "measuring",
		Verifying:        "verifying",
		Reporting:        "reporting",
		Done:             "done",
		AllocationFailed: "allocation-failed",
		State(99):        "unknown",
	}
	for s, name := range want {
		if got := s.String(); got != name {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, name)
		}
	}
	if !Done.Terminal() || !AllocationFailed.Terminal() || Measuring.Terminal() {
		t.Error("Terminal() wrong")
	}
}

func TestSliceOf(t *testing.T) {
	x := []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name       string
		k          int
		head, tail []int32
	}{
		{"k zero", 0, nil, nil},
		{"k small", 3, []int32{0, 1, 2}, []int32{7, 8, 9}},
		{"exactly half", 5, []int32{0, 1, 2, 3, 4}, nil},
		{"k exceeds length", 20, x, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SliceOf(x, tt.k)
			if s.Len != len(x) {
				t.Errorf("Len = %d, want %d", s.Len, len(x))
			}
			if !equal(s.Head, tt.head) {
				t.Errorf("Head = %v, want %v", s.Head, tt.head)
			}
			if !equal(s.Tail, tt.tail) {
				t.Errorf("Tail = %v, want %v", s.Tail, tt.tail)
			}
		})
	}

	s := SliceOf(x, 2)
	s.Head[0] = 42
	if x[0] != 0 {
		t.Error("SliceOf aliases its input")
	}
}

func equal(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
