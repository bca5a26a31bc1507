//go:build windows

package platform

import "golang.org/x/sys/windows"

// IsElevated reports whether the process runs with administrator rights.
// System-wide roots (Windows temp, prefetch, logs) usually need elevation
// to be cleaned.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
