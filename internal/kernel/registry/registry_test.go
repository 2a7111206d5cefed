package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Reference: true})
	reg.Register(OpEntry{Name: "unroll8", SIMDLevel: cpu.SIMDNone, Priority: 10})

	if got := len(reg.ListEntries()); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}

	reg.Reset()
	if got := len(reg.ListEntries()); got != 0 {
		t.Fatalf("expected 0 entries after Reset, got %d", got)
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// registered out of order to exercise sorting
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Reference: true})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "unroll8", SIMDLevel: cpu.SIMDNone, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"AVX2 available", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"no AVX2 - unrolled scalar", cpu.Features{HasSSE2: true}, "unroll8"},
		{"no SIMD - unrolled scalar", cpu.Features{}, "unroll8"},
		{"ForceGeneric - reference loop", cpu.Features{HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_Empty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %q", entry.Name)
	}

	reg.Register(OpEntry{Name: "unroll8", SIMDLevel: cpu.SIMDNone, Priority: 10})
	if entry := reg.Lookup(cpu.Features{ForceGeneric: true}); entry != nil {
		t.Fatalf("expected nil without a reference entry, got %q", entry.Name)
	}
}
