// Package sign produces schnorr signatures over a transaction's signable
// digest. The digest itself is an injected capability so the signer can
// be exercised with synthetic digests.
package sign

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/internal/keys"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// DigestLen is the byte length the curve primitive expects.
const DigestLen = 32

// Digester produces the protocol-defined signable digest of a
// transaction. Same transaction content must always yield the same
// digest.
type Digester interface {
	SigningDigest(tx *models.Transaction) ([]byte, error)
}

// Signer signs transactions with a secret key over an injected digest.
// Stateless; safe for concurrent use.
type Signer struct {
	digester Digester
}

// New returns a Signer using the given digest capability.
func New(d Digester) *Signer {
	return &Signer{digester: d}
}

// Sign returns a signed copy of tx: the schnorr signature over the
// signable digest attached to every input, all other fields unchanged.
// The input transaction is never mutated.
func (s *Signer) Sign(tx *models.Transaction, key models.SecretKey) (*models.Transaction, error) {
	scalar, err := keys.SecretScalar(key)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedEncoding) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", models.ErrSigningFailure, err)
	}
	defer codec.Zero(scalar)

	if err := keys.ValidateScalar(scalar); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSigningFailure, err)
	}

	digest, err := s.digester.SigningDigest(tx)
	if err != nil {
		return nil, fmt.Errorf("%w: digest: %w", models.ErrSigningFailure, err)
	}
	if len(digest) != DigestLen {
		return nil, fmt.Errorf("%w: digest must be %d bytes, got %d",
			models.ErrSigningFailure, DigestLen, len(digest))
	}

	priv, _ := btcec.PrivKeyFromBytes(scalar)
	defer priv.Zero()

	sig, err := schnorr.Sign(priv, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSigningFailure, err)
	}

	signed := tx.Clone()
	sigHex := codec.BytesToHex(sig.Serialize())
	for i := range signed.Inputs {
		signed.Inputs[i].Signature = sigHex
	}
	signed.Signed = true
	return signed, nil
}

// Verify reports whether sig is a valid signature over digest for the
// given public key (33-byte compressed or 32-byte x-only form).
func Verify(digest, sig, publicKey []byte) bool {
	if len(digest) != DigestLen {
		return false
	}

	xonly := publicKey
	if len(xonly) == 33 {
		xonly = xonly[1:]
	}
	pub, err := schnorr.ParsePubKey(xonly)
	if err != nil {
		return false
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(digest, pub)
}
