package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/settlement"

	"gorm.io/gorm"
)

// Wallet holds a party's spendable balance in the smallest currency unit.
type Wallet struct {
	ID        uint64             `gorm:"primaryKey;column:id"`
	PartyID   loanDomain.PartyID `gorm:"column:party_id;type:char(32);not null;uniqueIndex:ux_wallets_party"`
	Balance   uint64             `gorm:"column:balance;not null;default:0"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Wallet) TableName() string { return "wallets" }

// WalletSettlement implements settlement.Service over the wallets table.
// Bound to the same tx as the record store through the unit of work, the
// debit/credit pair commits or rolls back with the loan record update.
type WalletSettlement struct{ db *gorm.DB }

func NewWalletSettlement(db *gorm.DB) *WalletSettlement { return &WalletSettlement{db: db} }

func (s *WalletSettlement) Transfer(ctx context.Context, from, to loanDomain.PartyID, amount uint64) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return settlement.ErrTimeout
		}
		return err
	}

	// Guarded debit: fails when the balance cannot cover the amount.
	res := s.db.WithContext(ctx).Model(&Wallet{}).
		Where("party_id = ? AND balance >= ?", from, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return settlement.ErrInsufficientFunds
	}

	res = s.db.WithContext(ctx).Model(&Wallet{}).
		Where("party_id = ?", to).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// First credit for this party: open the wallet.
		return s.db.WithContext(ctx).Create(&Wallet{PartyID: to, Balance: amount}).Error
	}
	return nil
}

// Deposit tops up a wallet outside any loan flow (faucet/on-ramp).
func (s *WalletSettlement) Deposit(ctx context.Context, party loanDomain.PartyID, amount uint64) error {
	res := s.db.WithContext(ctx).Model(&Wallet{}).
		Where("party_id = ?", party).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.WithContext(ctx).Create(&Wallet{PartyID: party, Balance: amount}).Error
	}
	return nil
}

// Balance reads a wallet's current holdings; zero for an unopened wallet.
func (s *WalletSettlement) Balance(ctx context.Context, party loanDomain.PartyID) (uint64, error) {
	var w Wallet
	res := s.db.WithContext(ctx).Where("party_id = ?", party).First(&w)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, res.Error
	}
	return w.Balance, nil
}
