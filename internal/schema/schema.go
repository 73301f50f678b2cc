// Package schema is the Schema Resolver: given a (product, db_type)
// pair it produces the ordered column layout describing which semantic
// fields exist in that database variant and at what byte offset within
// a row.
//
// The column matrices themselves are hard-coded constant data (see
// dbdata.go), reproducing IP2Location's published DB1..DB26 and
// IP2Proxy's PX1..PX11 schemas. They're expressed in the same small DSL
// pg9182/ip2x's build-time generator consumed, but instead of emitting
// Go source at `go generate` time, this package parses the DSL once at
// init() into the lookup tables directly — there's no source-code
// generation step in this module (see DESIGN.md).
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType distinguishes how a column's bytes are decoded.
type FieldType uint8

const (
	// TypeString indicates the column is a 4-byte little-endian
	// pointer to a length-prefixed string elsewhere in the file.
	TypeString FieldType = iota + 1
	// TypeFloat32 indicates the column is a 4-byte little-endian
	// IEEE-754 float stored inline in the row.
	TypeFloat32
)

// Field is a semantic database column name, e.g. "country_code".
type Field string

// Product identifies which of the two supported BIN formats a schema
// describes.
type Product uint8

const (
	ProductLocation Product = 1
	ProductProxy    Product = 2
)

// Column describes one present field within a resolved row layout.
type Column struct {
	Type FieldType
	// Offset is the byte offset of this column within the row,
	// already adjusted for the table's IP_FROM width (4 bytes for
	// IPv4, 16 for IPv6) per spec §4.3.
	Offset uint32
	// PtrOffset is added to the pointer value before reading the
	// string at the target location, used for fields packed right
	// after another string's bytes (e.g. country_name immediately
	// follows country_code's 3-byte length-prefixed payload).
	PtrOffset uint32
}

// Layout maps every field present in a particular (product, db_type,
// ip version) combination to its Column. Fields absent from that
// variant are simply missing from the map.
type Layout map[Field]Column

type fieldSpec struct {
	name      Field
	typ       FieldType
	ptrOffset uint32
	cols      []uint8 // cols[dbType-1] = 1-based column index within row, 0 = absent
}

type productSchema struct {
	product Product
	maxType uint8
	fields  []*fieldSpec
}

var (
	locationSchema *productSchema
	proxySchema    *productSchema
)

func init() {
	var err error
	if locationSchema, err = parseDSL(ProductLocation, locationDSL); err != nil {
		panic("schema: invalid location DSL: " + err.Error())
	}
	if proxySchema, err = parseDSL(ProductProxy, proxyDSL); err != nil {
		panic("schema: invalid proxy DSL: " + err.Error())
	}
}

// Resolve returns the layout for dbType under product, with row offsets
// computed for ipv4Width/ipv6Width-sized IP_FROM columns as appropriate.
// ipv6 selects which of the two geometries to compute offsets for.
func Resolve(product Product, dbType uint8, ipv6 bool) (Layout, error) {
	s := schemaFor(product)
	if s == nil {
		return nil, fmt.Errorf("schema: unknown product %d", product)
	}
	if dbType == 0 || dbType > s.maxType {
		return nil, fmt.Errorf("schema: db type %d out of range for product %d (max %d)", dbType, product, s.maxType)
	}

	ipFromWidth := uint32(4)
	if ipv6 {
		ipFromWidth = 16
	}

	l := make(Layout, len(s.fields))
	for _, f := range s.fields {
		col := f.cols[dbType-1]
		if col == 0 {
			continue
		}
		l[f.name] = Column{
			Type:      f.typ,
			Offset:    ipFromWidth + 4*(uint32(col)-2),
			PtrOffset: f.ptrOffset,
		}
	}
	return l, nil
}

// MaxType returns the highest db_type this package knows a schema for,
// for the given product.
func MaxType(product Product) uint8 {
	if s := schemaFor(product); s != nil {
		return s.maxType
	}
	return 0
}

func schemaFor(product Product) *productSchema {
	switch product {
	case ProductLocation:
		return locationSchema
	case ProductProxy:
		return proxySchema
	default:
		return nil
	}
}

// parseDSL parses the small column-matrix DSL described in dbdata.go's
// doc comment. The first non-empty line is the header: product code,
// name, type prefix, then the sequential db_type numbers. Each
// following line is "<typespec> <field> <col-or-dot>...", one column
// value per db_type listed in the header.
func parseDSL(product Product, src string) (*productSchema, error) {
	lines := strings.Split(src, "\n")
	var header []string
	var rows [][]string
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if header == nil {
			header = fields
			continue
		}
		rows = append(rows, fields)
	}
	if header == nil {
		return nil, fmt.Errorf("empty schema")
	}
	// header: code name prefix n1 n2 ... nK
	if len(header) < 4 {
		return nil, fmt.Errorf("malformed header %q", strings.Join(header, " "))
	}
	code, err := strconv.ParseUint(header[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("bad product code: %w", err)
	}
	if uint8(code) != uint8(product) {
		return nil, fmt.Errorf("product code %d does not match declared product %d", code, product)
	}
	dbTypes := header[3:]
	maxType := uint8(len(dbTypes))
	for i, n := range dbTypes {
		if v, err := strconv.Atoi(n); err != nil || v != i+1 {
			return nil, fmt.Errorf("db types must be sequential starting at 1, got %q at position %d", n, i+1)
		}
	}

	s := &productSchema{product: product, maxType: maxType}
	seen := map[Field]bool{}
	for _, row := range rows {
		if len(row) != 2+int(maxType) {
			return nil, fmt.Errorf("field row %q has %d columns, want %d", strings.Join(row, " "), len(row)-2, maxType)
		}
		typ, ptrOff, err := parseTypeSpec(row[0])
		if err != nil {
			return nil, err
		}
		name := Field(row[1])
		if seen[name] {
			return nil, fmt.Errorf("duplicate field %q", name)
		}
		seen[name] = true

		cols := make([]uint8, maxType)
		for i, c := range row[2:] {
			if c == "." {
				continue
			}
			v, err := strconv.ParseUint(c, 10, 8)
			if err != nil || v < 2 {
				return nil, fmt.Errorf("field %q: invalid column %q for db type %d", name, c, i+1)
			}
			cols[i] = uint8(v)
		}
		s.fields = append(s.fields, &fieldSpec{name: name, typ: typ, ptrOffset: ptrOff, cols: cols})
	}
	return s, nil
}

// parseTypeSpec parses "str", "str@N", or "f32".
func parseTypeSpec(spec string) (FieldType, uint32, error) {
	switch {
	case spec == "f32":
		return TypeFloat32, 0, nil
	case spec == "str":
		return TypeString, 0, nil
	case strings.HasPrefix(spec, "str@"):
		n, err := strconv.ParseUint(spec[len("str@"):], 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("bad pointer offset in type spec %q: %w", spec, err)
		}
		return TypeString, uint32(n), nil
	default:
		return 0, 0, fmt.Errorf("unknown type spec %q", spec)
	}
}
