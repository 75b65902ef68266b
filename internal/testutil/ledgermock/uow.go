package ledgermock

import (
	"context"

	"loanme-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

// UoW hands its fixed Repos straight to the callback. There is no real
// transaction: the in-memory store applies writes immediately, which is
// fine for usecase tests because the CAS is the commit point.
type UoW struct {
	R uow.Repos
	// WithinTxFn, when set, intercepts the call entirely.
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.R)
}
