package models

import "errors"

// Error taxonomy surfaced to the host. Lower layers wrap these with
// context via fmt.Errorf("...: %w", ...); callers match with errors.Is.
var (
	// ErrMalformedEncoding reports input that is not valid hex.
	ErrMalformedEncoding = errors.New("malformed hex encoding")

	// ErrUnsupportedEncoding reports a tag/format combination other
	// than the supported one ("hex").
	ErrUnsupportedEncoding = errors.New("unsupported key encoding")

	// ErrInvalidDerivativeLength reports decoded derivative fields that
	// are not exactly 32/32/33 bytes.
	ErrInvalidDerivativeLength = errors.New("invalid derivative length")

	// ErrDerivationFailure reports a scalar the curve rejects, or any
	// wrapped lower-level error during key derivation.
	ErrDerivationFailure = errors.New("key derivation failed")

	// ErrSigningFailure reports a malformed secret key or a curve
	// primitive failure while signing.
	ErrSigningFailure = errors.New("transaction signing failed")

	// ErrMalformedTransaction reports a transaction lacking the fields
	// required to extract display details.
	ErrMalformedTransaction = errors.New("malformed transaction")
)
