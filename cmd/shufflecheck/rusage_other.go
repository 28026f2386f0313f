//go:build !linux && !darwin

package main

// maxRSS returns 0 on platforms without getrusage support.
func maxRSS() uint64 {
	return 0
}
