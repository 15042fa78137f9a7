// Package keys implements extended-key assembly and key-pair derivation
// for the secp256k1 configuration.
package keys

import (
	"fmt"

	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// Byte lengths of the derivative fields and the assembled extended key.
const (
	SecretKeyLen        = 32
	ChainCodeLen        = 32
	CompressedPubKeyLen = 33
	ExtendedKeyLen      = 128
)

// AssembleExtended packs a derivative into the 128-byte extended-key
// layout: secret at [0,32), secret again at [32,64) as the expanded
// half, chain code at [64,96), and the public key minus its parity
// prefix at [96,128). Pure byte transform, no cryptographic validation
// beyond length checks.
//
// The duplicated scalar and the dropped parity byte follow the layout
// the upstream protocol ships; see DESIGN.md for the compatibility risk
// attached to changing it.
func AssembleExtended(secret, chainCode, publicKey []byte) ([]byte, error) {
	if len(secret) != SecretKeyLen || len(chainCode) != ChainCodeLen || len(publicKey) != CompressedPubKeyLen {
		return nil, fmt.Errorf("%w: got %d/%d/%d bytes, want %d/%d/%d",
			models.ErrInvalidDerivativeLength,
			len(secret), len(chainCode), len(publicKey),
			SecretKeyLen, ChainCodeLen, CompressedPubKeyLen)
	}

	buf := make([]byte, ExtendedKeyLen)
	copy(buf[0:32], secret)
	copy(buf[32:64], secret)
	copy(buf[64:96], chainCode)
	copy(buf[96:128], publicKey[1:])
	return buf, nil
}
