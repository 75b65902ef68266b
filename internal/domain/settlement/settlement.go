package settlement

import (
	"context"
	"errors"

	"loanme-backend/internal/domain/loan"
)

var (
	ErrInsufficientFunds = errors.New("settlement: insufficient funds")
	ErrTimeout           = errors.New("settlement: transfer timed out")
)

// Service moves value between parties. The ledger usecase calls it inside
// the same unit of work as the record update, so a transfer commits only if
// the record write commits.
type Service interface {
	Transfer(ctx context.Context, from, to loan.PartyID, amount uint64) error
}
