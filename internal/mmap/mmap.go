// Package mmap is the default byte-region provider for the DB Facade.
//
// It is intentionally small and sits entirely outside the core lookup
// path described by the module's design: the core only ever sees the
// []byte it hands back, never the file descriptor or syscalls used to
// produce it. Swapping in a different provider (reading the whole file
// into a heap buffer, serving it from an embedded asset, fetching it
// from a network store) only requires producing a []byte of the right
// length — see Region's doc comment.
package mmap

import (
	"io"
	"os"
)

// Region is a read-only, byte-addressable view of an opened file. Its
// zero value is not usable; construct one with Open.
type Region struct {
	data  []byte
	close func() error
}

// Bytes returns the mapped bytes. The slice is read-only in spirit (the
// backing pages are mapped PROT_READ on platforms that support it) and
// must not be retained past Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Len returns the number of mapped bytes.
func (r *Region) Len() int {
	return len(r.data)
}

// Close unmaps the region (or releases the fallback buffer). The file
// descriptor itself is already closed by the time Open returns.
func (r *Region) Close() error {
	if r.close == nil {
		return nil
	}
	err := r.close()
	r.close = nil
	r.data = nil
	return err
}

// Open memory-maps path read-only. On platforms without a native mmap
// path (anything outside the "unix" build-tag set), it falls back to
// reading the whole file into a heap buffer, so the Region interface
// stays identical either way; only performance on cold pages differs.
func Open(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, os.ErrInvalid
	}
	return open(f, fi.Size())
}

// OpenReadAll reads path fully into a heap buffer instead of mapping
// it, for callers that asked not to mmap (see the root package's
// WithoutMmap option).
func OpenReadAll(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, os.ErrInvalid
	}
	buf := make([]byte, fi.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return &Region{data: buf, close: func() error { return nil }}, nil
}
