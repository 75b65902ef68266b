package uow

import (
	"context"

	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/post"
	"loanme-backend/internal/domain/settlement"
)

type Repos struct {
	Records     loan.RecordStore
	Settlements settlement.Service
	Posts       post.Repository
}

// UnitOfWork runs fn with every collaborator bound to one transaction, so a
// record update and its settlement transfer commit or roll back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
