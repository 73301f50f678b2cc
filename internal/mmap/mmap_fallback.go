//go:build !unix

package mmap

import (
	"io"
	"os"
)

// open reads the whole file into memory on platforms where this module
// does not wire up a native mmap syscall (see package doc). The OS page
// cache still does the heavy lifting for repeated opens of the same
// file; this only gives up zero-copy sharing across process address
// spaces, which the core's correctness never depends on.
func open(f *os.File, size int64) (*Region, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return &Region{data: buf, close: func() error { return nil }}, nil
}
