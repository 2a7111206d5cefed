package generic

import (
	"github.com/cwbudde/algo-parbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Priority 0: selected only when nothing better is registered or when
// ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Reference: true,
		AddBlock:  AddBlock,
	})
}
