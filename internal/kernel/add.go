// Package kernel dispatches element-wise int32 addition to the best
// registered variant for the current CPU.
//
// CPU features come from github.com/cwbudde/algo-vecmath/cpu, so
// cpu.SetForcedFeatures followed by Reselect changes the choice.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-parbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	// variants register themselves from init
	_ "github.com/cwbudde/algo-parbench/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-parbench/internal/kernel/arch/unroll"
)

var (
	selectMu sync.Mutex
	addImpl  func(dst, a, b []int32)
	addName  string
)

func selectLocked() {
	if addImpl != nil {
		return
	}
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil || entry.AddBlock == nil {
		panic("kernel: no add kernel registered")
	}
	addImpl = entry.AddBlock
	addName = entry.Name
}

// Func returns the selected kernel. The kernel computes
// dst[i] = a[i] + b[i] and panics if the slice lengths differ.
// Callers hold on to the result so hot loops skip the dispatch lock.
func Func() func(dst, a, b []int32) {
	selectMu.Lock()
	defer selectMu.Unlock()
	selectLocked()
	return addImpl
}

// Selected returns the name of the kernel Func returns.
func Selected() string {
	selectMu.Lock()
	defer selectMu.Unlock()
	selectLocked()
	return addName
}

// Reselect drops the cached choice so the next call consults the registry
// again. Used after cpu.SetForcedFeatures.
func Reselect() {
	selectMu.Lock()
	addImpl = nil
	addName = ""
	selectMu.Unlock()
}
