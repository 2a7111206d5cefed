//go:build !linux

package host

// FreeMemory is not implemented on this platform and always reports
// ok == false.
func FreeMemory() (bytes int64, ok bool) {
	return 0, false
}
