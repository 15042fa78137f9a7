package keys

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// DeriveFromSeed walks m/{purpose}'/{coinType}'/0'/0/{index} over a
// BIP-39 seed and returns the resulting derivative with hex-encoded
// fields, ready for FromDerivative.
func DeriveFromSeed(seed []byte, purpose, coinType, index uint32) (models.HDDerivative, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: master key: %w", models.ErrDerivationFailure, err)
	}

	// m/{purpose}'
	purposeKey, err := masterKey.NewChildKey(bip32.FirstHardenedChild + purpose)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: derive purpose: %w", models.ErrDerivationFailure, err)
	}

	// m/{purpose}'/{coinType}'
	coin, err := purposeKey.NewChildKey(bip32.FirstHardenedChild + coinType)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: derive coin: %w", models.ErrDerivationFailure, err)
	}

	// m/{purpose}'/{coinType}'/0'
	account, err := coin.NewChildKey(bip32.FirstHardenedChild + 0)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: derive account: %w", models.ErrDerivationFailure, err)
	}

	// m/{purpose}'/{coinType}'/0'/0
	change, err := account.NewChildKey(0)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: derive change: %w", models.ErrDerivationFailure, err)
	}

	// m/{purpose}'/{coinType}'/0'/0/{index}
	child, err := change.NewChildKey(index)
	if err != nil {
		return models.HDDerivative{}, fmt.Errorf("%w: derive child: %w", models.ErrDerivationFailure, err)
	}

	return models.HDDerivative{
		SecretKey: codec.BytesToHex(child.Key),
		ChainCode: codec.BytesToHex(child.ChainCode),
		PublicKey: codec.BytesToHex(child.PublicKey().Key),
	}, nil
}
