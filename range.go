package ip2geo

import (
	"github.com/ip2geo/ip2geo/address"
	"github.com/ip2geo/ip2geo/byteview"

	"lukechampine.com/uint128"
)

// findRow performs the binary search described in spec §4.5: it locates
// the row whose IP_FROM..IP_TO range contains key, optionally narrowing
// the initial bounds using an index directory the same way
// pg9182/ip2x's Lookup does (ip4idx/ip6idx), generalized to either
// table via rowWidth/baseAddr/indexAddr parameters instead of being
// inlined into one function per width.
func findRow(v byteview.ByteView, key address.Key, rowWidth, rowCount, baseAddr, indexAddr uint32) (uint32, error) {
	if rowCount == 0 {
		return 0, ErrIPAddressNotSupported
	}

	lower, upper := uint32(0), rowCount-1
	if indexAddr != 0 {
		var bucket uint32
		if key.Table == address.TableV4 {
			bucket = key.V4 >> 16
		} else {
			bucket = uint32(key.V6.Hi >> 48)
		}
		off := indexAddr + bucket*8
		lo, err := v.ReadU32LE(off)
		if err != nil {
			return 0, err
		}
		hi, err := v.ReadU32LE(off + 4)
		if err != nil {
			return 0, err
		}
		lower, upper = lo, hi
	}

	for lower <= upper {
		mid := lower + (upper-lower)/2

		from, err := rowKey(v, rowWidth, baseAddr, mid, key.Table)
		if err != nil {
			return 0, err
		}

		var hasUpperBound bool
		var to uint128.Uint128
		if mid+1 < rowCount {
			to, err = rowKey(v, rowWidth, baseAddr, mid+1, key.Table)
			if err != nil {
				return 0, err
			}
			hasUpperBound = true
		}

		k := keyAsUint128(key)
		if k.Cmp(from) < 0 {
			if mid == 0 {
				break
			}
			upper = mid - 1
			continue
		}
		if hasUpperBound && k.Cmp(to) >= 0 {
			lower = mid + 1
			continue
		}
		return mid, nil
	}
	return 0, ErrIPAddressNotFound
}

// rowKey reads the IP_FROM value of row index idx as a uint128,
// regardless of table width, so the binary search above can compare
// uniformly.
func rowKey(v byteview.ByteView, rowWidth, baseAddr, idx uint32, table address.Table) (uint128.Uint128, error) {
	off := baseAddr + idx*rowWidth
	if table == address.TableV4 {
		u, err := v.ReadU32LE(off)
		if err != nil {
			return uint128.Uint128{}, err
		}
		return uint128.From64(uint64(u)), nil
	}
	raw, err := v.ReadU128(off)
	if err != nil {
		return uint128.Uint128{}, err
	}
	return address.RowV6Key(raw), nil
}

func keyAsUint128(key address.Key) uint128.Uint128 {
	if key.Table == address.TableV4 {
		return uint128.From64(uint64(key.V4))
	}
	return key.V6
}
