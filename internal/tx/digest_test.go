package tx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/OKaluzny/kaspa-signer/internal/codec"
	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

func testTransaction() *models.Transaction {
	return &models.Transaction{
		Version: 1,
		Inputs: []models.TxInput{
			{Address: "kaspa:alice", Amount: 1000},
		},
		Outputs: []models.TxOutput{
			{Address: "kaspa:bob", Amount: 500},
			{Address: "kaspa:alice", Amount: 300},
		},
		Fee:      200,
		LockTime: 0,
	}
}

func TestSigningDigest_Deterministic(t *testing.T) {
	tx := testTransaction()

	d1, err := Hasher{}.SigningDigest(tx)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Hasher{}.SigningDigest(tx)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Errorf("same transaction produced different digests: %x vs %x", d1, d2)
	}
	if len(d1) != 32 {
		t.Errorf("digest length = %d, want 32", len(d1))
	}
}

func TestSigningDigest_IgnoresSignatures(t *testing.T) {
	unsigned := testTransaction()
	before, err := Hasher{}.SigningDigest(unsigned)
	if err != nil {
		t.Fatal(err)
	}

	signed := unsigned.Clone()
	signed.Inputs[0].Signature = "deadbeef"
	signed.Signed = true

	after, err := Hasher{}.SigningDigest(signed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("digest changed after attaching signatures")
	}
}

func TestSigningDigest_ContentSensitive(t *testing.T) {
	base := testTransaction()
	baseDigest, err := Hasher{}.SigningDigest(base)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Transaction)
	}{
		{"version", func(tx *models.Transaction) { tx.Version = 2 }},
		{"output amount", func(tx *models.Transaction) { tx.Outputs[0].Amount++ }},
		{"output address", func(tx *models.Transaction) { tx.Outputs[0].Address = "kaspa:carol" }},
		{"input address", func(tx *models.Transaction) { tx.Inputs[0].Address = "kaspa:carol" }},
		{"fee", func(tx *models.Transaction) { tx.Fee++ }},
		{"lock time", func(tx *models.Transaction) { tx.LockTime = 12345 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := testTransaction()
			tt.mutate(mutated)
			digest, err := Hasher{}.SigningDigest(mutated)
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(digest, baseDigest) {
				t.Error("digest unchanged after content mutation")
			}
		})
	}
}

func TestSigningDigest_NilTransaction(t *testing.T) {
	_, err := Hasher{}.SigningDigest(nil)
	if !errors.Is(err, models.ErrMalformedTransaction) {
		t.Errorf("err = %v, want ErrMalformedTransaction", err)
	}
}

func TestTransactionID(t *testing.T) {
	tx := testTransaction()

	id, err := TransactionID(tx)
	if err != nil {
		t.Fatal(err)
	}
	if len(id) != 64 {
		t.Errorf("id hex length = %d, want 64", len(id))
	}

	// Separate domain from the signing digest.
	digest, err := Hasher{}.SigningDigest(tx)
	if err != nil {
		t.Fatal(err)
	}
	if id == codec.BytesToHex(digest) {
		t.Error("transaction id must not share the signing digest domain")
	}

	again, err := TransactionID(tx)
	if err != nil {
		t.Fatal(err)
	}
	if id != again {
		t.Errorf("same transaction produced different ids: %s vs %s", id, again)
	}
}
