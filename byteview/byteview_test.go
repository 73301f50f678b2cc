package byteview

import (
	"errors"
	"math"
	"testing"
)

func TestReadU8(t *testing.T) {
	v := New([]byte{0x11, 0x22, 0x33})
	got, err := v.ReadU8(2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x22 {
		t.Fatalf("got %#x, want 0x22", got)
	}
}

func TestReadU32LE(t *testing.T) {
	v := New([]byte{0x01, 0x02, 0x03, 0x04, 0xff})
	got, err := v.ReadU32LE(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint32(0x04030201); got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func TestReadF32LE(t *testing.T) {
	var b [4]byte
	bits := math.Float32bits(3.14159)
	b[0], b[1], b[2], b[3] = byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)
	v := New(b[:])
	got, err := v.ReadF32LE(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.14159 {
		t.Fatalf("got %v, want 3.14159", got)
	}
}

func TestReadPString(t *testing.T) {
	v := New([]byte{0x05, 'h', 'e', 'l', 'l', 'o', 0xff})
	got, err := v.ReadPString(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestOutOfRange(t *testing.T) {
	v := New([]byte{0x01, 0x02})
	if _, err := v.ReadU32LE(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	if _, err := v.ReadU8(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("zero offset should be out of range, got %v", err)
	}
}

func TestReadU128(t *testing.T) {
	raw := make([]byte, 16)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	v := New(raw)
	got, err := v.ReadU128(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != [16]byte(raw[:16]) {
		t.Fatalf("got %v, want %v", got, raw)
	}
}
