package address

import "errors"

// ErrInvalidAddress is returned by Canonicalize for a zero-value or
// otherwise invalid netip.Addr.
var ErrInvalidAddress = errors.New("address: invalid address")
