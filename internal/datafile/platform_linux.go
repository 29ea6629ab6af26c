//go:build linux

package datafile

import (
	"os"

	"golang.org/x/sys/unix"
)

// preallocate reserves disk blocks up front so page writeback cannot SIGBUS
// on a full disk. Falls back to ftruncate on filesystems without fallocate
// support (e.g. NFS).
func preallocate(f *os.File, size int64) error {
	if err := unix.Fallocate(int(f.Fd()), 0, 0, size); err != nil {
		return unix.Ftruncate(int(f.Fd()), size)
	}
	// Fallocate allocates blocks but does not set the file size.
	return unix.Ftruncate(int(f.Fd()), size)
}

// adviseSequential hints that the mapping will be accessed roughly
// sequentially, which suits both the fill pass and merge passes.
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
