package tx

import (
	"fmt"

	"github.com/OKaluzny/kaspa-signer/pkg/models"
)

// Describe decomposes a transaction into one normalized transfer effect
// per output, ordered as the outputs are. The sender is the address of
// the first input; IsInbound is relative to viewer, the address owned by
// the caller's public key. Pure over well-formed transactions.
func Describe(t *models.Transaction, viewer string) ([]models.TransactionDetail, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transaction", models.ErrMalformedTransaction)
	}
	if len(t.Inputs) == 0 {
		return nil, fmt.Errorf("%w: no inputs", models.ErrMalformedTransaction)
	}
	if len(t.Outputs) == 0 {
		return nil, fmt.Errorf("%w: no outputs", models.ErrMalformedTransaction)
	}

	sender := t.Inputs[0].Address
	if sender == "" {
		return nil, fmt.Errorf("%w: input missing address", models.ErrMalformedTransaction)
	}

	details := make([]models.TransactionDetail, 0, len(t.Outputs))
	for i, out := range t.Outputs {
		if out.Address == "" {
			return nil, fmt.Errorf("%w: output %d missing address", models.ErrMalformedTransaction, i)
		}
		details = append(details, models.TransactionDetail{
			From:      sender,
			To:        out.Address,
			Amount:    out.Amount,
			IsInbound: out.Address == viewer && sender != viewer,
		})
	}
	return details, nil
}
