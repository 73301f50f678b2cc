package ip2geo

import (
	"fmt"

	"github.com/ip2geo/ip2geo/byteview"
	"github.com/ip2geo/ip2geo/internal/schema"
)

// header is the decoded fixed prefix of a BIN file (spec §4.2). It is
// computed once at open and never changes for the lifetime of a DB.
type header struct {
	product     schema.Product
	dbType      uint8
	columnCount uint8
	year        uint8
	month       uint8
	day         uint8

	ipv4RowCount  uint32
	ipv4BaseAddr  uint32
	ipv6RowCount  uint32
	ipv6BaseAddr  uint32
	ipv4IndexAddr uint32
	ipv6IndexAddr uint32
}

// decodeHeader reads and validates the header from the first bytes of v,
// following pg9182/ip2x's db.go New for the shape of the validation (bad
// month/day, product/type consistency, non-zero column count) but this
// format's own byte layout rather than that library's.
func decodeHeader(v byteview.ByteView) (header, error) {
	var h header

	productByte, err := v.ReadU8(1)
	if err != nil {
		return h, fmt.Errorf("%w: reading product_kind: %v", ErrInvalidBinDatabase, err)
	}
	dbType, err := v.ReadU8(2)
	if err != nil {
		return h, fmt.Errorf("%w: reading db_type: %v", ErrInvalidBinDatabase, err)
	}
	columnCount, err := v.ReadU8(3)
	if err != nil {
		return h, fmt.Errorf("%w: reading column_count: %v", ErrInvalidBinDatabase, err)
	}
	year, err := v.ReadU8(4)
	if err != nil {
		return h, fmt.Errorf("%w: reading year: %v", ErrInvalidBinDatabase, err)
	}
	month, err := v.ReadU8(5)
	if err != nil {
		return h, fmt.Errorf("%w: reading month: %v", ErrInvalidBinDatabase, err)
	}
	day, err := v.ReadU8(6)
	if err != nil {
		return h, fmt.Errorf("%w: reading day: %v", ErrInvalidBinDatabase, err)
	}
	ipv4RowCount, err := v.ReadU32LE(7)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv4_row_count: %v", ErrInvalidBinDatabase, err)
	}
	ipv4BaseAddr, err := v.ReadU32LE(11)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv4_base_addr: %v", ErrInvalidBinDatabase, err)
	}
	ipv6RowCount, err := v.ReadU32LE(15)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv6_row_count: %v", ErrInvalidBinDatabase, err)
	}
	ipv6BaseAddr, err := v.ReadU32LE(19)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv6_base_addr: %v", ErrInvalidBinDatabase, err)
	}
	ipv4IndexAddr, err := v.ReadU32LE(23)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv4_index_base_addr: %v", ErrInvalidBinDatabase, err)
	}
	ipv6IndexAddr, err := v.ReadU32LE(27)
	if err != nil {
		return h, fmt.Errorf("%w: reading ipv6_index_base_addr: %v", ErrInvalidBinDatabase, err)
	}

	h = header{
		dbType:        dbType,
		columnCount:   columnCount,
		year:          year,
		month:         month,
		day:           day,
		ipv4RowCount:  ipv4RowCount,
		ipv4BaseAddr:  ipv4BaseAddr,
		ipv6RowCount:  ipv6RowCount,
		ipv6BaseAddr:  ipv6BaseAddr,
		ipv4IndexAddr: ipv4IndexAddr,
		ipv6IndexAddr: ipv6IndexAddr,
	}

	switch productByte {
	case 1:
		h.product = schema.ProductLocation
	case 2:
		h.product = schema.ProductProxy
	default:
		return h, fmt.Errorf("%w: unknown product_kind %d", ErrInvalidBinDatabase, productByte)
	}
	if dbType == 0 || dbType > schema.MaxType(h.product) {
		return h, fmt.Errorf("%w: db_type %d out of range for product %d", ErrInvalidBinDatabase, dbType, h.product)
	}
	if columnCount == 0 {
		return h, fmt.Errorf("%w: column_count is zero", ErrInvalidBinDatabase)
	}
	if month == 0 || month > 12 || day == 0 || day > 31 {
		return h, fmt.Errorf("%w: implausible date %02d-%02d-%02d", ErrInvalidBinDatabase, year, month, day)
	}
	if ipv4RowCount != 0 && ipv4BaseAddr == 0 {
		return h, fmt.Errorf("%w: ipv4_base_addr is zero with non-empty ipv4 table", ErrInvalidBinDatabase)
	}
	if ipv6RowCount != 0 && ipv6BaseAddr == 0 {
		return h, fmt.Errorf("%w: ipv6_base_addr is zero with non-empty ipv6 table", ErrInvalidBinDatabase)
	}

	// Only rowCount rows need to actually be present: the range resolver
	// never reads past the last real row (its upper bound is +∞, per
	// spec §4.5 step 2), so unlike some historical BIN readers this
	// does not require a trailing sentinel row.
	ipv4RowWidth := 4 + 4*uint32(columnCount-1)
	ipv6RowWidth := 16 + 4*uint32(columnCount-1)
	if ipv4RowCount > 0 {
		end := uint64(ipv4BaseAddr-1) + uint64(ipv4RowCount)*uint64(ipv4RowWidth)
		if end > uint64(v.Len()) {
			return h, fmt.Errorf("%w: ipv4 table extends past end of file", ErrInvalidBinDatabase)
		}
	}
	if ipv6RowCount > 0 {
		end := uint64(ipv6BaseAddr-1) + uint64(ipv6RowCount)*uint64(ipv6RowWidth)
		if end > uint64(v.Len()) {
			return h, fmt.Errorf("%w: ipv6 table extends past end of file", ErrInvalidBinDatabase)
		}
	}

	return h, nil
}

// Version returns the two-digit-year database build date as YYYY-MM-DD.
func (h header) Version() string {
	return fmt.Sprintf("20%02d-%02d-%02d", h.year, h.month, h.day)
}

func (h header) rowWidth(ipv6 bool) uint32 {
	if ipv6 {
		return 16 + 4*uint32(h.columnCount-1)
	}
	return 4 + 4*uint32(h.columnCount-1)
}
