// Package address is the Address Canonicalizer: it turns a parsed IP
// address into the internal numeric key used by the Range Resolver,
// selecting the IPv4 or IPv6 table per spec §4.4.
//
// The 6to4/Teredo/IPv4-mapped bit-twiddling is grounded on
// pg9182/ip2x's db.go unmap function and mirrored by
// ip2location-ip2proxy-go/ip2proxy.go's checkIP — both arrive at the
// same embedded-IPv4 extraction, just with different 128-bit integer
// types. This package uses lukechampine.com/uint128, the one the pack
// actually depends on for this.
package address

import (
	"encoding/binary"
	"net/netip"

	"lukechampine.com/uint128"
)

// Table selects which range table a Key belongs to.
type Table uint8

const (
	TableV4 Table = 4
	TableV6 Table = 6
)

// Key is the canonicalized lookup key produced from a query address.
type Key struct {
	Table Table
	V4    uint32
	V6    uint128.Uint128
}

// Canonicalize classifies addr and computes its lookup key, applying
// the IPv4-mapped, 6to4, and Teredo unwrapping rules from spec §4.4 in
// order. The returned key's V6 field, when Table is TableV6, is the
// address's natural 128-bit value (most significant byte first) —
// the same convention produced by reading a row's 16-byte IP_FROM with
// RowV6Key, since the file stores that value byte-reversed (see
// that function's doc comment).
func Canonicalize(addr netip.Addr) (Key, error) {
	if !addr.IsValid() {
		return Key{}, ErrInvalidAddress
	}
	if addr.Is4() {
		b := addr.As4()
		return Key{Table: TableV4, V4: binary.BigEndian.Uint32(b[:])}, nil
	}

	b := addr.As16()
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])

	switch {
	case hi>>48 == 0x2002:
		// 6to4: 2002:AABB:CCDD::/16 embeds a.b.c.d in bits 16..48.
		v4 := uint32((hi >> 16) & 0xffffffff)
		return Key{Table: TableV4, V4: v4}, nil
	case hi>>32 == 0x20010000:
		// Teredo: 2001:0000::/32 embeds ^(a.b.c.d) in the last 32 bits.
		v4 := uint32(^lo & 0xffffffff)
		return Key{Table: TableV4, V4: v4}, nil
	case hi == 0 && lo>>32 == 0xffff:
		// IPv4-mapped: ::ffff:a.b.c.d/96.
		v4 := uint32(lo & 0xffffffff)
		return Key{Table: TableV4, V4: v4}, nil
	default:
		return Key{Table: TableV6, V6: uint128.New(lo, hi)}, nil
	}
}

// RowV6Key reinterprets a row's raw 16-byte IP_FROM/IP_TO payload (as
// returned by byteview.ByteView.ReadU128) as the same natural 128-bit
// value Canonicalize produces for a query address. IP2Location stores
// the IPv6 endpoints byte-reversed relative to standard network order,
// so the row's first 8 bytes become the *low* 64 bits (read
// little-endian) and the last 8 become the high 64 bits.
func RowV6Key(raw [16]byte) uint128.Uint128 {
	lo := binary.LittleEndian.Uint64(raw[0:8])
	hi := binary.LittleEndian.Uint64(raw[8:16])
	return uint128.New(lo, hi)
}
