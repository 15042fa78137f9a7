package address

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x33}, 32)

	addr, err := Encode("kaspa", payload)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(addr, "kaspa:") {
		t.Errorf("address should start with kaspa:, got %s", addr)
	}

	prefix, decoded, err := Decode(addr)
	if err != nil {
		t.Fatal(err)
	}
	if prefix != "kaspa" {
		t.Errorf("prefix = %s, want kaspa", prefix)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("decoded payload = %x, want %x", decoded, payload)
	}
}

func TestEncode_CompressedInput(t *testing.T) {
	// A 33-byte compressed point and its bare x coordinate must encode
	// to the same address.
	compressed := append([]byte{0x03}, bytes.Repeat([]byte{0x33}, 32)...)

	fromCompressed, err := Encode("kaspa", compressed)
	if err != nil {
		t.Fatal(err)
	}
	fromXOnly, err := Encode("kaspa", compressed[1:])
	if err != nil {
		t.Fatal(err)
	}
	if fromCompressed != fromXOnly {
		t.Errorf("compressed and x-only inputs encode differently: %s vs %s", fromCompressed, fromXOnly)
	}
}

func TestEncode_BadLength(t *testing.T) {
	for _, n := range []int{0, 20, 31, 34, 65} {
		if _, err := Encode("kaspa", make([]byte, n)); !errors.Is(err, models.ErrMalformedEncoding) {
			t.Errorf("Encode with %d-byte key: err = %v, want ErrMalformedEncoding", n, err)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"no separator", "kaspaqqqq"},
		{"empty prefix", ":qqqq"},
		{"bad checksum", "kaspa:qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.addr); !errors.Is(err, models.ErrMalformedEncoding) {
				t.Errorf("err = %v, want ErrMalformedEncoding", err)
			}
		})
	}
}
