package unroll

import (
	"github.com/cwbudde/algo-parbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Priority 10: preferred over the reference loop on every architecture.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unroll8",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		AddBlock:  AddBlock,
	})
}
