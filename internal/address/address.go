// Package address encodes public keys as bech32 addresses with the
// coin's human-readable prefix (e.g. "kaspa:qq...").
package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// Separator between the prefix and the payload.
const Separator = ":"

// Encode returns the bech32 address for a public key. Accepts either the
// 33-byte compressed point (the parity prefix is dropped) or the bare
// 32-byte x coordinate.
func Encode(prefix string, publicKey []byte) (string, error) {
	var payload []byte
	switch len(publicKey) {
	case 33:
		payload = publicKey[1:]
	case 32:
		payload = publicKey
	default:
		return "", fmt.Errorf("%w: public key must be 32 or 33 bytes, got %d",
			models.ErrMalformedEncoding, len(publicKey))
	}

	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrMalformedEncoding, err)
	}
	encoded, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrMalformedEncoding, err)
	}

	// bech32.Encode joins prefix and payload with "1"; the coin's
	// display format uses ":".
	return prefix + Separator + encoded[len(prefix)+1:], nil
}

// Decode parses an address back to its prefix and the 32-byte x-only
// public key.
func Decode(addr string) (prefix string, publicKey []byte, err error) {
	idx := strings.Index(addr, Separator)
	if idx <= 0 {
		return "", nil, fmt.Errorf("%w: missing address prefix", models.ErrMalformedEncoding)
	}
	prefix = addr[:idx]

	hrp, data, err := bech32.Decode(prefix + "1" + addr[idx+1:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", models.ErrMalformedEncoding, err)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", models.ErrMalformedEncoding, err)
	}
	if len(payload) != 32 {
		return "", nil, fmt.Errorf("%w: address payload must be 32 bytes, got %d",
			models.ErrMalformedEncoding, len(payload))
	}
	return hrp, payload, nil
}
