//go:build linux

package host

import (
	"math"

	"golang.org/x/sys/unix"
)

// FreeMemory returns the free physical memory in bytes as reported by
// sysinfo(2). Page cache is not counted. ok is false if the call fails.
func FreeMemory() (bytes int64, ok bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	free := uint64(info.Freeram) * uint64(info.Unit)
	if free > math.MaxInt64 {
		free = math.MaxInt64
	}
	return int64(free), true
}
