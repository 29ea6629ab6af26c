//go:build !linux

package datafile

import "os"

// preallocate sets the file size with ftruncate. Most non-Linux platforms
// have no portable block preallocation; sparse-file SIGBUS on disk full is
// accepted there.
func preallocate(f *os.File, size int64) error {
	return f.Truncate(size)
}

// adviseSequential is a no-op on non-Linux platforms.
func adviseSequential(data []byte) {
	// No-op
}
