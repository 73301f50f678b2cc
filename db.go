// Package ip2geo reads IP2Location and IP2Proxy BIN-format geolocation
// and proxy-classification databases.
//
// A DB is opened once with Open and then queried with Lookup or
// LookupString; both are safe for concurrent use by multiple
// goroutines, since a DB is immutable after Open (spec §4.7,
// §5) — the same invariant pg9182/ip2x's DB documents for its own
// io.ReaderAt-backed handle.
package ip2geo

import (
	"fmt"
	"net/netip"

	"github.com/ip2geo/ip2geo/address"
	"github.com/ip2geo/ip2geo/byteview"
	"github.com/ip2geo/ip2geo/internal/mmap"
	"github.com/ip2geo/ip2geo/internal/schema"
)

// DB is an opened, validated BIN database. The zero value is not
// usable; construct one with Open.
type DB struct {
	region *mmap.Region
	view   byteview.ByteView
	header header
}

// Open opens path, maps it read-only, decodes and validates its
// header, and returns a ready-to-query handle. The returned DB owns
// the underlying file mapping; call Close when done with it.
func Open(path string, opts ...Option) (*DB, error) {
	cfg := defaultOpenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		region *mmap.Region
		err    error
	)
	if cfg.mmap {
		region, err = mmap.Open(path)
	} else {
		region, err = mmap.OpenReadAll(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	view := byteview.New(region.Bytes())
	h, err := decodeHeader(view)
	if err != nil {
		region.Close()
		return nil, err
	}

	return &DB{region: region, view: view, header: h}, nil
}

// Close releases the underlying file mapping. Any Record obtained from
// this DB must not be used after Close, since its string fields borrow
// directly from the mapped bytes.
func (db *DB) Close() error {
	return db.region.Close()
}

// ProductKind returns 1 for an IP2Location database and 2 for an
// IP2Proxy database, matching the header's product_kind discriminator.
func (db *DB) ProductKind() uint8 {
	return uint8(db.header.product)
}

// DBType returns the database variant (e.g. 11 for IP2Location DB11).
func (db *DB) DBType() uint8 {
	return db.header.dbType
}

// ColumnCount returns the number of columns in each row, including
// IP_FROM.
func (db *DB) ColumnCount() uint8 {
	return db.header.columnCount
}

// Date returns the database's build date as two-digit year, month, day.
func (db *DB) Date() (year, month, day uint8) {
	return db.header.year, db.header.month, db.header.day
}

// Version formats Date as "20YY-MM-DD".
func (db *DB) Version() string {
	return db.header.Version()
}

// HasIPv4 reports whether the database carries any IPv4 rows.
func (db *DB) HasIPv4() bool {
	return db.header.ipv4RowCount > 0
}

// HasIPv6 reports whether the database carries any IPv6 rows.
func (db *DB) HasIPv6() bool {
	return db.header.ipv6RowCount > 0
}

// Has reports whether field f is present in this database's schema.
func (db *DB) Has(f schema.Field) bool {
	layout, err := schema.Resolve(db.header.product, db.header.dbType, false)
	if err != nil {
		return false
	}
	_, ok := layout[f]
	return ok
}

// EachField calls fn once for every field present in this database's
// schema, stopping early if fn returns false.
func (db *DB) EachField(fn func(schema.Field) bool) {
	layout, err := schema.Resolve(db.header.product, db.header.dbType, false)
	if err != nil || fn == nil {
		return
	}
	for f := range layout {
		if !fn(f) {
			return
		}
	}
}

// LookupString parses addr and looks it up. A parse failure returns
// ErrIPAddressError.
func (db *DB) LookupString(addr string) (Record, error) {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrIPAddressError, err)
	}
	return db.Lookup(a)
}

// Lookup canonicalizes addr, resolves it to a row via binary search,
// and materializes that row into a Record — the orchestration spec
// §4.7 describes as "canonicalize → resolve → materialize".
func (db *DB) Lookup(addr netip.Addr) (Record, error) {
	key, err := address.Canonicalize(addr)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrIPAddressError, err)
	}

	ipv6 := key.Table == address.TableV6
	rowCount := db.header.ipv4RowCount
	baseAddr := db.header.ipv4BaseAddr
	indexAddr := db.header.ipv4IndexAddr
	if ipv6 {
		rowCount = db.header.ipv6RowCount
		baseAddr = db.header.ipv6BaseAddr
		indexAddr = db.header.ipv6IndexAddr
	}
	if rowCount == 0 {
		return Record{}, ErrIPAddressNotSupported
	}

	layout, err := schema.Resolve(db.header.product, db.header.dbType, ipv6)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidBinDatabase, err)
	}

	rowWidth := db.header.rowWidth(ipv6)
	rowIdx, err := findRow(db.view, key, rowWidth, rowCount, baseAddr, indexAddr)
	if err != nil {
		return Record{}, err
	}

	return materialize(db.view, db.header, layout, ipv6, rowIdx, addr)
}
