// Package datafile stores fixed-length int64 arrays in regular files and
// exposes them through a writable memory mapping, so benchmarks can sort
// file-resident data in place without a load/store pass.
//
// Values are stored in host byte order; a data file is not portable across
// byte orders. This is bench plumbing, not an interchange format.
package datafile

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

const elemSize = 8 // int64

// File is an int64 array backed by a memory-mapped regular file.
//
// The mapping is private to one File; concurrent use follows the same rules
// as any []int64. Close unmaps the data slice — no access may follow it.
type File struct {
	f    *os.File
	mm   mmap.MMap
	data []int64
}

// Create creates (or truncates) a data file holding n int64s and maps it
// read-write. The file's blocks are preallocated up front so sorting cannot
// SIGBUS on a full disk mid-run.
func Create(path string, n int) (*File, error) {
	if n < 0 {
		return nil, fmt.Errorf("datafile: negative length %d", n)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if err := preallocate(f, int64(n)*elemSize); err != nil {
		f.Close()
		return nil, fmt.Errorf("datafile: preallocate %s: %w", path, err)
	}
	return wrap(f)
}

// Open maps an existing data file read-write. The file size must be a
// multiple of 8 bytes.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size()%elemSize != 0 {
		f.Close()
		return nil, fmt.Errorf("datafile: %s size %d is not a multiple of %d", path, st.Size(), elemSize)
	}
	return wrap(f)
}

func wrap(f *os.File) (*File, error) {
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() == 0 {
		return &File{f: f}, nil
	}
	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("datafile: mmap %s: %w", f.Name(), err)
	}
	// The mapping is page-aligned, so the int64 view is properly aligned.
	data := unsafe.Slice((*int64)(unsafe.Pointer(&mm[0])), len(mm)/elemSize)
	adviseSequential(mm)
	return &File{f: f, mm: mm, data: data}, nil
}

// Data returns the file's contents as an int64 slice aliasing the mapping.
// Mutations are visible in the file after Flush (or kernel writeback).
func (d *File) Data() []int64 { return d.data }

// Len returns the number of int64s in the file.
func (d *File) Len() int { return len(d.data) }

// Flush synchronously writes any modified pages back to the file.
func (d *File) Flush() error {
	if d.mm == nil {
		return nil
	}
	return d.mm.Flush()
}

// Close unmaps the data and closes the underlying file. The slice returned
// by Data must not be used afterwards.
func (d *File) Close() error {
	var unmapErr error
	if d.mm != nil {
		unmapErr = d.mm.Unmap()
		d.mm = nil
		d.data = nil
	}
	closeErr := d.f.Close()
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}
