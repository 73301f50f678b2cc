package ip2geo

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for
// them; wrapped errors (e.g. an underlying *os.PathError) are available
// via errors.Unwrap.
var (
	// ErrInvalidBinDatabase is returned when the header is internally
	// inconsistent, names an unknown product or db_type, or the file is
	// too short for the header it claims to have.
	ErrInvalidBinDatabase = errors.New("ip2geo: invalid bin database")

	// ErrIO wraps a failure opening or mapping the underlying file.
	ErrIO = errors.New("ip2geo: i/o error")

	// ErrIPAddressError is returned by the string-accepting lookup
	// entry points when the address fails to parse.
	ErrIPAddressError = errors.New("ip2geo: invalid ip address")

	// ErrIPAddressNotSupported is returned when the canonicalized
	// address routes to a table that has zero rows in this database.
	ErrIPAddressNotSupported = errors.New("ip2geo: address not supported by this database")

	// ErrIPAddressNotFound is returned when the address does not fall
	// within any row's range.
	ErrIPAddressNotFound = errors.New("ip2geo: address not found")

	// ErrRecordNotFound is returned when a matched row's data cannot be
	// materialized: a pointer column refers outside the file, or a
	// required column is absent.
	ErrRecordNotFound = errors.New("ip2geo: record not found")
)
