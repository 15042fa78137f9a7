// Package tx implements the transaction-model collaborator: canonical
// serialization, the keyed signing digest, and display decomposition.
package tx

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// Domain-separation keys for the protocol's keyed BLAKE2b-256 hashes.
const (
	signingHashKey = "TransactionSigningHash"
	idHashKey      = "TransactionID"
)

// Hasher is the production Digester: BLAKE2b-256 keyed with the signing
// domain over the canonical serialization.
type Hasher struct{}

// SigningDigest returns the 32-byte signable digest of a transaction.
// Deterministic over content; signatures are excluded so the digest is
// identical before and after signing.
func (Hasher) SigningDigest(t *models.Transaction) ([]byte, error) {
	serialized, err := serialize(t)
	if err != nil {
		return nil, err
	}
	return keyedHash(signingHashKey, serialized), nil
}

// TransactionID returns the hex transaction id used for display and
// logging, hashed in its own domain.
func TransactionID(t *models.Transaction) (string, error) {
	serialized, err := serialize(t)
	if err != nil {
		return "", err
	}
	return codec.BytesToHex(keyedHash(idHashKey, serialized)), nil
}

// serialize writes the canonical little-endian byte form of the
// signable transaction content.
func serialize(t *models.Transaction) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transaction", models.ErrMalformedTransaction)
	}

	var buf bytes.Buffer
	writeUint16(&buf, t.Version)

	writeUint64(&buf, uint64(len(t.Inputs)))
	for _, in := range t.Inputs {
		writeString(&buf, in.Address)
		writeUint64(&buf, in.Amount)
	}

	writeUint64(&buf, uint64(len(t.Outputs)))
	for _, out := range t.Outputs {
		writeString(&buf, out.Address)
		writeUint64(&buf, out.Amount)
	}

	writeUint64(&buf, t.Fee)
	writeUint64(&buf, t.LockTime)
	return buf.Bytes(), nil
}

func keyedHash(key string, data []byte) []byte {
	// New256 only fails for keys longer than 64 bytes; the domain keys
	// are constants well under that.
	h, _ := blake2b.New256([]byte(key))
	h.Write(data)
	return h.Sum(nil)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint64(buf, uint64(len(s)))
	buf.WriteString(s)
}
