//go:build linux

package main

import "golang.org/x/sys/unix"

// maxRSS returns the peak resident set size in bytes.
// Best-effort: returns 0 if getrusage fails.
func maxRSS() uint64 {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On Linux, Maxrss is in kilobytes.
	return uint64(rusage.Maxrss) * 1024
}
