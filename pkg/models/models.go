package models

// KeyFormat identifies how key material is encoded when it crosses the
// module boundary. Only hex is supported.
type KeyFormat string

// Supported key encodings.
const (
	FormatHex KeyFormat = "hex"
)

// Key type tags as they appear at the module boundary.
const (
	TagSecret = "priv"
	TagPublic = "pub"
)

// SecretKey is a tagged private-key value. The value is either the raw
// 32-byte scalar or the 128-byte extended key, hex-encoded.
type SecretKey struct {
	Format KeyFormat `json:"format"`
	Value  string    `json:"value"`
}

// Tag returns the boundary type tag for a secret key.
func (SecretKey) Tag() string { return TagSecret }

// PublicKey is a tagged public-key value: the 33-byte compressed curve
// point, hex-encoded.
type PublicKey struct {
	Format KeyFormat `json:"format"`
	Value  string    `json:"value"`
}

// Tag returns the boundary type tag for a public key.
func (PublicKey) Tag() string { return TagPublic }

// HDDerivative is the output of a hierarchical-deterministic derivation
// step: secret key (32 B), chain code (32 B), compressed public key
// (33 B), all hex-encoded.
type HDDerivative struct {
	SecretKey string `json:"secret_key"`
	ChainCode string `json:"chain_code"`
	PublicKey string `json:"public_key"`
}

// KeyPair is the derived pair returned to the host: the assembled
// extended secret key and the unchanged compressed public key.
type KeyPair struct {
	SecretKey SecretKey `json:"secret_key"`
	PublicKey PublicKey `json:"public_key"`
}

// Metadata is the static coin descriptor exposed to the host.
type Metadata struct {
	Name           string `json:"name"`
	Identifier     string `json:"identifier"`
	Symbol         string `json:"symbol"`
	Decimals       int    `json:"decimals"`
	DerivationPath string `json:"derivation_path"`
}

// CryptoConfiguration tells the host which derivation/signing primitive
// to use upstream.
type CryptoConfiguration struct {
	Algorithm string `json:"algorithm"`
}

// TxInput spends a previous output owned by Address. Signature is empty
// until the transaction is signed.
type TxInput struct {
	Address   string `json:"address"`
	Amount    uint64 `json:"amount"`
	Signature string `json:"signature,omitempty"`
}

// TxOutput sends Amount minor-units to Address.
type TxOutput struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// Transaction is the offline transaction value: fully specified inputs
// and outputs, amounts in minor units (sompi).
type Transaction struct {
	Version  uint16     `json:"version"`
	Inputs   []TxInput  `json:"inputs"`
	Outputs  []TxOutput `json:"outputs"`
	Fee      uint64     `json:"fee"`
	LockTime uint64     `json:"lock_time"`
	Signed   bool       `json:"signed"`
	ID       string     `json:"id,omitempty"`
}

// Clone returns a deep copy so signing never mutates the caller's value.
func (t *Transaction) Clone() *Transaction {
	cp := *t
	cp.Inputs = make([]TxInput, len(t.Inputs))
	copy(cp.Inputs, t.Inputs)
	cp.Outputs = make([]TxOutput, len(t.Outputs))
	copy(cp.Outputs, t.Outputs)
	return &cp
}

// TransactionDetail is one normalized transfer effect for display.
type TransactionDetail struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	IsInbound bool   `json:"is_inbound"`
}
