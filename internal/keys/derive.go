package keys

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// FromDerivative assembles a usable key pair from an HD derivative: the
// hex-encoded extended key tagged "priv" and the derivative's compressed
// public key unchanged, tagged "pub". Recomputed on every call; nothing
// is cached.
func FromDerivative(d models.HDDerivative) (models.KeyPair, error) {
	secret, err := codec.HexToBytes(d.SecretKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: secret key: %w", models.ErrDerivationFailure, err)
	}
	defer codec.Zero(secret)

	chainCode, err := codec.HexToBytes(d.ChainCode)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: chain code: %w", models.ErrDerivationFailure, err)
	}

	publicKey, err := codec.HexToBytes(d.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: public key: %w", models.ErrDerivationFailure, err)
	}

	extended, err := AssembleExtended(secret, chainCode, publicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", models.ErrDerivationFailure, err)
	}
	defer codec.Zero(extended)

	if err := ValidateScalar(secret); err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", models.ErrDerivationFailure, err)
	}

	return models.KeyPair{
		SecretKey: models.SecretKey{Format: models.FormatHex, Value: codec.BytesToHex(extended)},
		PublicKey: models.PublicKey{Format: models.FormatHex, Value: d.PublicKey},
	}, nil
}

// PublicFromSecret computes the compressed public key for a secret key
// by scalar multiplication with the curve generator.
func PublicFromSecret(key models.SecretKey) (models.PublicKey, error) {
	scalar, err := SecretScalar(key)
	if err != nil {
		return models.PublicKey{}, wrapUnlessTagged(models.ErrDerivationFailure, err)
	}
	defer codec.Zero(scalar)

	if err := ValidateScalar(scalar); err != nil {
		return models.PublicKey{}, fmt.Errorf("%w: %w", models.ErrDerivationFailure, err)
	}

	priv, pub := btcec.PrivKeyFromBytes(scalar)
	defer priv.Zero()

	return models.PublicKey{
		Format: models.FormatHex,
		Value:  codec.BytesToHex(pub.SerializeCompressed()),
	}, nil
}

// SecretScalar decodes a tagged secret key to its raw 32-byte scalar.
// Accepts either the bare scalar or the 128-byte extended key, whose
// first 32 bytes are the scalar. The caller owns zeroing the result.
func SecretScalar(key models.SecretKey) ([]byte, error) {
	if key.Format != models.FormatHex {
		return nil, fmt.Errorf("%w: format %q", models.ErrUnsupportedEncoding, key.Format)
	}

	raw, err := codec.HexToBytes(key.Value)
	if err != nil {
		return nil, err
	}

	switch len(raw) {
	case SecretKeyLen:
		return raw, nil
	case ExtendedKeyLen:
		scalar := make([]byte, SecretKeyLen)
		copy(scalar, raw[:SecretKeyLen])
		codec.Zero(raw)
		return scalar, nil
	default:
		codec.Zero(raw)
		return nil, fmt.Errorf("secret key must be %d or %d bytes, got %d",
			SecretKeyLen, ExtendedKeyLen, len(raw))
	}
}

// ValidateScalar rejects byte strings that are not valid secp256k1
// scalars: wrong length, zero, or not less than the group order. btcec's
// constructor silently reduces out-of-range values, so the check happens
// here before any key object is built.
func ValidateScalar(b []byte) error {
	if len(b) != SecretKeyLen {
		return fmt.Errorf("scalar must be %d bytes, got %d", SecretKeyLen, len(b))
	}

	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	zero := s.IsZero()
	s.Zero()

	if overflow {
		return errors.New("scalar not less than the curve order")
	}
	if zero {
		return errors.New("zero scalar")
	}
	return nil
}

// wrapUnlessTagged wraps err with the component sentinel unless the
// error already carries a boundary classification (an encoding error
// keeps its own identity).
func wrapUnlessTagged(sentinel error, err error) error {
	if errors.Is(err, models.ErrUnsupportedEncoding) || errors.Is(err, models.ErrMalformedEncoding) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
