// Package codec converts between hexadecimal strings and raw byte
// buffers at the module boundary.
package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// HexToBytes decodes a hex string. Odd length or non-hex characters fail
// with models.ErrMalformedEncoding.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedEncoding, err)
	}
	return b, nil
}

// BytesToHex encodes bytes as a lowercase, two-characters-per-byte hex
// string. Total inverse of HexToBytes.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Zero overwrites a secret buffer in place. Callers defer this on every
// buffer holding key material.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
