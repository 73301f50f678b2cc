package address

import (
	"net/netip"
	"testing"

	"lukechampine.com/uint128"
)

func TestCanonicalizeIPv4(t *testing.T) {
	key, err := Canonicalize(netip.MustParseAddr("1.2.3.4"))
	if err != nil {
		t.Fatal(err)
	}
	if key.Table != TableV4 {
		t.Fatalf("table = %v, want V4", key.Table)
	}
	if want := uint32(0x01020304); key.V4 != want {
		t.Fatalf("v4 key = %#x, want %#x", key.V4, want)
	}
}

func TestCanonicalizeIPv4Mapped(t *testing.T) {
	key, err := Canonicalize(netip.MustParseAddr("::ffff:1.2.3.4"))
	if err != nil {
		t.Fatal(err)
	}
	if key.Table != TableV4 {
		t.Fatalf("table = %v, want V4", key.Table)
	}
	if want := uint32(0x01020304); key.V4 != want {
		t.Fatalf("v4 key = %#x, want %#x", key.V4, want)
	}
}

func TestCanonicalize6to4(t *testing.T) {
	// 2002:0102:0304:: embeds 1.2.3.4.
	key, err := Canonicalize(netip.MustParseAddr("2002:102:304::"))
	if err != nil {
		t.Fatal(err)
	}
	if key.Table != TableV4 {
		t.Fatalf("table = %v, want V4", key.Table)
	}
	if want := uint32(0x01020304); key.V4 != want {
		t.Fatalf("v4 key = %#x, want %#x", key.V4, want)
	}
}

func TestCanonicalizeTeredo(t *testing.T) {
	// Teredo embeds the bitwise-NOT of the client IPv4 in the last 32 bits.
	notIP := ^uint32(0x01020304)
	addr := netip.AddrFrom16([16]byte{
		0x20, 0x01, 0x00, 0x00,
		0, 0, 0, 0, 0, 0, 0, 0,
		byte(notIP >> 24), byte(notIP >> 16), byte(notIP >> 8), byte(notIP),
	})
	key, err := Canonicalize(addr)
	if err != nil {
		t.Fatal(err)
	}
	if key.Table != TableV4 {
		t.Fatalf("table = %v, want V4", key.Table)
	}
	if want := uint32(0x01020304); key.V4 != want {
		t.Fatalf("v4 key = %#x, want %#x", key.V4, want)
	}
}

func TestCanonicalizeNativeIPv6(t *testing.T) {
	key, err := Canonicalize(netip.MustParseAddr("2606:2800:220:1::1"))
	if err != nil {
		t.Fatal(err)
	}
	if key.Table != TableV6 {
		t.Fatalf("table = %v, want V6", key.Table)
	}
	if key.V6 == (uint128.Uint128{}) {
		t.Fatal("v6 key must be non-zero")
	}
}

func TestCanonicalizeInvalid(t *testing.T) {
	if _, err := Canonicalize(netip.Addr{}); err != ErrInvalidAddress {
		t.Fatalf("got %v, want ErrInvalidAddress", err)
	}
}

func TestRowV6KeyRoundTrip(t *testing.T) {
	addr := netip.MustParseAddr("2606:2800:220:1::1")
	key, err := Canonicalize(addr)
	if err != nil {
		t.Fatal(err)
	}

	b := addr.As16()
	// Store byte-reversed, as the BIN format does, then confirm RowV6Key
	// reconstructs the same value Canonicalize produced.
	var raw [16]byte
	for i := range b {
		raw[15-i] = b[i]
	}
	got := RowV6Key(raw)
	if got != key.V6 {
		t.Fatalf("RowV6Key = %v, want %v", got, key.V6)
	}
}
