// Package signer is the host-facing boundary of an offline
// key-management and transaction-signing module for a Kaspa-like
// secp256k1 protocol. It derives key pairs from HD derivatives, signs
// fully-specified transactions, and decomposes transactions into
// display details. No network access, no persistent state: every
// operation is a pure function over its inputs.
package signer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/OKaluzny/kaspa-signer/internal/address"
	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/internal/config"
	"github.com/OKaluzny/kaspa-signer/internal/keys"
	"github.com/OKaluzny/kaspa-signer/internal/sign"
	"github.com/OKaluzny/kaspa-signer/internal/tx"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// Config holds the module's immutable parameters.
type Config = config.Config

// Digester produces the signable digest of a transaction. The production
// implementation is the protocol's keyed BLAKE2b hash; tests may inject
// synthetic digests.
type Digester = sign.Digester

// DefaultConfig returns the stock Kaspa configuration.
func DefaultConfig() Config { return config.Default() }

// ConfigFromEnv returns the stock configuration with environment
// overrides applied.
func ConfigFromEnv() Config { return config.FromEnv() }

// Module is the boundary surface called by the host framework.
// Stateless between calls and safe for concurrent use.
type Module struct {
	cfg      Config
	digester Digester
	signer   *sign.Signer
	logger   *slog.Logger
}

// Option customizes a Module.
type Option func(*Module)

// WithDigester replaces the production signing digest.
func WithDigester(d Digester) Option {
	return func(m *Module) { m.digester = d }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) { m.logger = l.With("component", "signer") }
}

// New creates a Module from the given config.
func New(cfg Config, opts ...Option) *Module {
	m := &Module{
		cfg:      cfg,
		digester: tx.Hasher{},
		logger:   slog.Default().With("component", "signer"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.signer = sign.New(m.digester)
	return m
}

// Metadata returns the static coin descriptor.
func (m *Module) Metadata() models.Metadata {
	return models.Metadata{
		Name:           m.cfg.Name,
		Identifier:     m.cfg.Identifier,
		Symbol:         m.cfg.Symbol,
		Decimals:       m.cfg.Decimals,
		DerivationPath: m.cfg.DerivationPath(),
	}
}

// CryptoConfiguration returns the derivation/signing primitive the host
// must use upstream.
func (m *Module) CryptoConfiguration() models.CryptoConfiguration {
	return models.CryptoConfiguration{Algorithm: m.cfg.Algorithm}
}

// KeyPairFromDerivative assembles a usable key pair from an HD
// derivative.
func (m *Module) KeyPairFromDerivative(d models.HDDerivative) (models.KeyPair, error) {
	pair, err := keys.FromDerivative(d)
	if err != nil {
		return models.KeyPair{}, err
	}
	m.logger.Info("derived key pair from derivative")
	return pair, nil
}

// PublicKeyFromSecretKey computes the compressed public key for a
// secret key.
func (m *Module) PublicKeyFromSecretKey(key models.SecretKey) (models.PublicKey, error) {
	return keys.PublicFromSecret(key)
}

// KeyPairFromSeed runs the full derivation walk over a BIP-39 seed at
// the configured path and assembles the key pair.
func (m *Module) KeyPairFromSeed(seed []byte) (models.KeyPair, error) {
	derivative, err := keys.DeriveFromSeed(seed, m.cfg.Purpose, m.cfg.CoinType, m.cfg.Index)
	if err != nil {
		return models.KeyPair{}, err
	}
	return m.KeyPairFromDerivative(derivative)
}

// SignTransaction signs a transaction with a secret key and returns the
// signed copy with its transaction id populated. The input transaction
// is never mutated.
func (m *Module) SignTransaction(t *models.Transaction, key models.SecretKey) (*models.Transaction, error) {
	signed, err := m.signer.Sign(t, key)
	if err != nil {
		return nil, err
	}

	id, err := tx.TransactionID(signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSigningFailure, err)
	}
	signed.ID = id

	m.logger.Info("signed transaction",
		"tx_id", signed.ID,
		"inputs", len(signed.Inputs),
		"outputs", len(signed.Outputs),
	)
	return signed, nil
}

// TransactionDetails decomposes a transaction into transfer effects
// relative to the given public key's address.
func (m *Module) TransactionDetails(t *models.Transaction, pub models.PublicKey) ([]models.TransactionDetail, error) {
	viewer, err := m.AddressFromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return tx.Describe(t, viewer)
}

// AddressFromPublicKey encodes a public key as a prefixed bech32
// address.
func (m *Module) AddressFromPublicKey(pub models.PublicKey) (string, error) {
	if pub.Format != models.FormatHex {
		return "", fmt.Errorf("%w: format %q", models.ErrUnsupportedEncoding, pub.Format)
	}
	raw, err := codec.HexToBytes(pub.Value)
	if err != nil {
		return "", err
	}
	addr, err := address.Encode(m.cfg.AddressPrefix, raw)
	if err != nil {
		return "", err
	}
	return addr, nil
}

// VerifyTransaction checks every input signature of a signed transaction
// against its signable digest and the given public key.
func (m *Module) VerifyTransaction(t *models.Transaction, pub models.PublicKey) (bool, error) {
	if t == nil || !t.Signed {
		return false, fmt.Errorf("%w: transaction is not signed", models.ErrMalformedTransaction)
	}
	if pub.Format != models.FormatHex {
		return false, fmt.Errorf("%w: format %q", models.ErrUnsupportedEncoding, pub.Format)
	}
	pubBytes, err := codec.HexToBytes(pub.Value)
	if err != nil {
		return false, err
	}

	digest, err := m.digester.SigningDigest(t)
	if err != nil {
		return false, err
	}

	for _, in := range t.Inputs {
		if in.Signature == "" {
			return false, nil
		}
		sigBytes, err := codec.HexToBytes(in.Signature)
		if err != nil {
			return false, err
		}
		if !sign.Verify(digest, sigBytes, pubBytes) {
			return false, nil
		}
	}
	return true, nil
}

// IsModuleError reports whether err belongs to the module's error
// taxonomy, as opposed to an unexpected lower-level failure.
func IsModuleError(err error) bool {
	for _, sentinel := range []error{
		models.ErrMalformedEncoding,
		models.ErrUnsupportedEncoding,
		models.ErrInvalidDerivativeLength,
		models.ErrDerivationFailure,
		models.ErrSigningFailure,
		models.ErrMalformedTransaction,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
