// Package byteview provides bounds-checked, zero-copy access to a
// read-only, byte-addressable memory region — typically an mmap'd BIN
// file, but any []byte works (tests back it with a plain slice).
//
// Offsets follow the convention used by the IP2Location/IP2Proxy BIN
// file format literature: they are 1-indexed, so offset 1 refers to the
// first byte of the region. Every read is bounds-checked; none of them
// panic on truncated or malformed input, matching the rest of this
// module's "errors are values" discipline.
package byteview

import (
	"errors"
	"math"
	"unsafe"
)

// ErrOutOfRange is returned when a read would reach outside the region.
var ErrOutOfRange = errors.New("byteview: read out of range")

// ByteView is an immutable, bounds-checked view over a byte region. The
// zero value is an empty view. Copying a ByteView is cheap; it shares
// the underlying array with its source.
type ByteView struct {
	b []byte
}

// New wraps b. The caller retains ownership; ByteView never mutates or
// copies b.
func New(b []byte) ByteView {
	return ByteView{b: b}
}

// Len returns the number of bytes in the region.
func (v ByteView) Len() int {
	return len(v.b)
}

// Bytes returns the raw backing slice. Callers must not mutate it.
func (v ByteView) Bytes() []byte {
	return v.b
}

// slice returns the n bytes starting at the 1-indexed offset off.
func (v ByteView) slice(off uint32, n int) ([]byte, error) {
	if off == 0 {
		return nil, ErrOutOfRange
	}
	i := int(off) - 1
	if i < 0 || n < 0 || i+n > len(v.b) || i+n < i {
		return nil, ErrOutOfRange
	}
	return v.b[i : i+n], nil
}

// ReadU8 reads a single byte at the 1-indexed offset off.
func (v ByteView) ReadU8(off uint32) (uint8, error) {
	b, err := v.slice(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU32LE reads a little-endian uint32 at the 1-indexed offset off.
func (v ByteView) ReadU32LE(off uint32) (uint32, error) {
	b, err := v.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// ReadU32BE reads a big-endian uint32 at the 1-indexed offset off. Used
// for the rare case a schema requires big-endian IP_FROM reinterpretation;
// most numeric fields in the format are little-endian.
func (v ByteView) ReadU32BE(off uint32) (uint32, error) {
	b, err := v.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24, nil
}

// ReadF32LE reads a little-endian IEEE-754 float32 at the 1-indexed
// offset off.
func (v ByteView) ReadF32LE(off uint32) (float32, error) {
	u, err := v.ReadU32LE(off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadU128 reads the 16-byte IPv6 IP_FROM/IP_TO value stored at the
// 1-indexed offset off, as raw bytes in file (little-endian limb)
// order. Callers combine these with an address canonicalizer's own
// 128-bit type rather than interpreting them here, since the in-memory
// representation is a concern of that caller, not of ByteView.
func (v ByteView) ReadU128(off uint32) ([16]byte, error) {
	var out [16]byte
	b, err := v.slice(off, 16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadPString reads a length-prefixed string at the 1-indexed offset
// off: one length byte N followed by N bytes of UTF-8 payload. The
// returned string borrows directly from the region; it is valid for as
// long as the region backing this ByteView is not released.
func (v ByteView) ReadPString(off uint32) (string, error) {
	n, err := v.ReadU8(off)
	if err != nil {
		return "", err
	}
	b, err := v.slice(off+1, int(n))
	if err != nil {
		return "", err
	}
	return unsafeString(b), nil
}

// Slice returns the n bytes starting at the 1-indexed offset off,
// without interpreting them, in one bounds-checked call.
func (v ByteView) Slice(off uint32, n int) ([]byte, error) {
	return v.slice(off, n)
}

// unsafeString converts b to a string without copying, the same trick
// used by strings.Builder.String and every BIN reader in the wild
// (pg9182/ip2x, ip2location-go, ip2proxy-go all do this).
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
