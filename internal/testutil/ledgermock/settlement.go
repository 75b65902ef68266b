package ledgermock

import (
	"context"

	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/settlement"
)

var _ settlement.Service = (*Settlement)(nil)

// TransferCall records one invocation of Transfer.
type TransferCall struct {
	From, To loan.PartyID
	Amount   uint64
}

// Settlement is a function-backed settlement.Service. With no TransferFn it
// accepts every transfer; either way it keeps the call log.
type Settlement struct {
	TransferFn func(ctx context.Context, from, to loan.PartyID, amount uint64) error
	Calls      []TransferCall
}

func (m *Settlement) Transfer(ctx context.Context, from, to loan.PartyID, amount uint64) error {
	m.Calls = append(m.Calls, TransferCall{From: from, To: to, Amount: amount})
	if m.TransferFn != nil {
		return m.TransferFn(ctx, from, to, amount)
	}
	return nil
}
