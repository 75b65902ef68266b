package mysql

import (
	"context"
	"errors"
	"strings"
	"testing"

	loanDomain "loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db, 0)
	loanID := strings.Repeat("a", 64)

	// A payment-shaped flow: move value and swap the record in one tx.
	settle := NewWalletSettlement(db)
	if err := settle.Deposit(ctx, walletB, 1_000_000_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Records.CreateIfAbsent(ctx, makeRecord(loanID)); err != nil {
			return err
		}
		rec, err := r.Records.Get(ctx, loanID)
		if err != nil {
			return err
		}
		if err := r.Settlements.Transfer(ctx, rec.Borrower, rec.Lender, 600_000_000); err != nil {
			return err
		}
		updated := *rec
		updated.PaidAmount = 600_000_000
		return r.Records.CompareAndSwap(ctx, rec, &updated)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Both effects visible after commit.
	got, err := NewRecordStore(db).Get(ctx, loanID)
	if err != nil {
		t.Fatalf("record not visible after commit: %v", err)
	}
	if got.PaidAmount != 600_000_000 {
		t.Fatalf("paid = %d", got.PaidAmount)
	}
	if b, _ := settle.Balance(ctx, walletA); b != 600_000_000 {
		t.Fatalf("lender balance = %d", b)
	}
}

func TestGormUoW_WithinTx_RollsBackTransferWithRecord(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db, 0)
	loanID := strings.Repeat("b", 64)

	settle := NewWalletSettlement(db)
	if err := settle.Deposit(ctx, walletB, 1_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := NewRecordStore(db).CreateIfAbsent(ctx, makeRecord(loanID)); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Settlements.Transfer(ctx, walletB, walletA, 1_000); err != nil {
			return err
		}
		// CAS against a stale snapshot fails and must unwind the transfer.
		stale := makeRecord(loanID)
		stale.PaidAmount = 999 // never the stored value
		updated := *stale
		updated.PaidAmount = 1_000
		return r.Records.CompareAndSwap(ctx, stale, &updated)
	})
	if !errors.Is(err, loanDomain.ErrConcurrentModification) {
		t.Fatalf("err = %v, want ErrConcurrentModification", err)
	}

	if b, _ := settle.Balance(ctx, walletB); b != 1_000 {
		t.Fatalf("transfer survived rollback, borrower balance = %d", b)
	}
	got, _ := NewRecordStore(db).Get(ctx, loanID)
	if got.PaidAmount != 0 {
		t.Fatalf("record changed by rolled-back tx: %+v", got)
	}
}
