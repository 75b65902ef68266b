package mysql

import (
	"context"
	"time"

	"loanme-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormUoW wraps db in a unit of work. A timeout > 0 bounds every
// transaction; an expired deadline surfaces as the settlement timeout at
// the usecase layer and nothing is committed.
func NewGormUoW(db *gorm.DB, timeout time.Duration) *GormUoW {
	return &GormUoW{db: db, timeout: timeout}
}

// WithinTx binds the record store, settlement and posts to one DB
// transaction, so a payment's wallet transfer and its compare-and-swap on
// the loan row commit or roll back as a unit.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Records:     &RecordStore{db: tx},
			Settlements: &WalletSettlement{db: tx},
			Posts:       &PostRepository{db: tx},
		}
		return fn(r)
	})
}
