package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the immutable parameters of the signing module. It is
// built once and passed by value; there is no module-level state.
type Config struct {
	// Coin descriptor exposed through metadata
	Name       string
	Identifier string
	Symbol     string
	Decimals   int

	// Signing algorithm descriptor
	Algorithm string

	// Address encoding
	AddressPrefix string

	// Derivation path segments: m/{Purpose}'/{CoinType}'/0'/0/{Index}
	Purpose  uint32
	CoinType uint32
	Index    uint32
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Name:       "Kaspa",
		Identifier: "kaspa",
		Symbol:     "KAS",
		Decimals:   8,

		Algorithm: "secp256k1",

		AddressPrefix: "kaspa",

		Purpose:  84,
		CoinType: 0,
		Index:    0,
	}
}

// FromEnv returns a Config populated from environment variables,
// falling back to defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("ADDRESS_PREFIX"); v != "" {
		cfg.AddressPrefix = v
	}
	if v := os.Getenv("DERIVATION_PURPOSE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Purpose = uint32(n)
		}
	}
	if v := os.Getenv("DERIVATION_COIN_TYPE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.CoinType = uint32(n)
		}
	}
	if v := os.Getenv("DERIVATION_INDEX"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Index = uint32(n)
		}
	}

	return cfg
}

// DerivationPath renders the configured BIP-44 style path.
func (c Config) DerivationPath() string {
	return fmt.Sprintf("m/%d'/%d'/0'/0/%d", c.Purpose, c.CoinType, c.Index)
}
