package ledger

import (
	"context"
	"errors"

	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/settlement"
	"loanme-backend/internal/domain/uow"
	"loanme-backend/pkg/clock"
	"loanme-backend/pkg/loanaddr"
)

// Usecase is the loan state machine. Lifecycle per loan:
// created (active, unfunded) → funded → closed once paid_amount covers
// principal plus accrued interest. Closed is terminal.
//
// All collaborators are injected; there is no package-level state.
type Usecase struct {
	store loan.RecordStore // direct reads
	uow   uow.UnitOfWork   // mutations: record write + settlement in one tx
	clk   clock.Clock
}

func NewUsecase(store loan.RecordStore, tx uow.UnitOfWork, clk clock.Clock) *Usecase {
	return &Usecase{store: store, uow: tx, clk: clk}
}

// CreateLoan allocates a loan record at the address derived from
// (lender, borrower, start time). Start time is assigned here from the
// injected clock; callers never supply it. Only the named lender may
// originate.
func (u *Usecase) CreateLoan(ctx context.Context, caller loan.PartyID, in CreateLoanInput) (*LoanDTO, error) {
	if in.Principal == 0 {
		return nil, loan.ErrInvalidPrincipal
	}
	if in.APYBasisPoints > maxBasisPoints {
		return nil, loan.ErrInvalidAPY
	}
	if in.DurationSeconds == 0 {
		return nil, loan.ErrInvalidDuration
	}
	if caller != in.Lender {
		return nil, loan.ErrUnauthorizedCreator
	}

	lb, err := in.Lender.Bytes()
	if err != nil {
		return nil, err
	}
	bb, err := in.Borrower.Bytes()
	if err != nil {
		return nil, err
	}

	start := u.clk.Now().Unix()
	loanID, err := loanaddr.Derive(lb, bb, start)
	if err != nil {
		return nil, err
	}

	rec := &loan.Record{
		LoanID:          loanID,
		Lender:          in.Lender,
		Borrower:        in.Borrower,
		Principal:       in.Principal,
		APYBasisPoints:  in.APYBasisPoints,
		DurationSeconds: in.DurationSeconds,
		StartTime:       start,
		PaidAmount:      0,
		IsActive:        true,
		IsFunded:        false,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Records.CreateIfAbsent(ctx, rec); err != nil {
			return err
		}
		if in.PostID != "" {
			return r.Posts.MarkFunded(ctx, in.PostID, loanID)
		}
		return nil
	})
	if err != nil {
		return nil, mapTimeout(err)
	}
	return toDTO(rec, 0), nil
}

// FundLoan disburses the principal from lender to borrower. Funding happens
// at most once, only by the lender, and only while the loan is active; the
// transfer and the is_funded flip share one transaction.
func (u *Usecase) FundLoan(ctx context.Context, caller loan.PartyID, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Records.Get(ctx, loanID)
		if err != nil {
			return err
		}
		if !rec.IsActive {
			return loan.ErrClosed
		}
		if caller != rec.Lender {
			return loan.ErrUnauthorizedFunder
		}
		if rec.IsFunded {
			return loan.ErrAlreadyFunded
		}

		if err := r.Settlements.Transfer(ctx, rec.Lender, rec.Borrower, rec.Principal); err != nil {
			return err
		}

		updated := *rec
		updated.IsFunded = true
		if err := r.Records.CompareAndSwap(ctx, rec, &updated); err != nil {
			return err
		}
		dto = toDTO(&updated, accruedInterest(rec.Principal, rec.APYBasisPoints, u.clk.Now().Unix()-rec.StartTime))
		return nil
	})
	if err != nil {
		return nil, mapTimeout(err)
	}
	return dto, nil
}

// MakePayment applies a borrower repayment. Interest is accrued to the
// instant of the call; a payment that would push paid_amount past
// principal+interest is rejected outright, and one that exactly covers it
// closes the loan in the same write.
func (u *Usecase) MakePayment(ctx context.Context, caller loan.PartyID, loanID string, amount uint64) (*LoanDTO, error) {
	if amount == 0 {
		return nil, loan.ErrZeroAmount
	}
	now := u.clk.Now().Unix()

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Records.Get(ctx, loanID)
		if err != nil {
			return err
		}
		if !rec.IsActive {
			return loan.ErrClosed
		}
		if caller != rec.Borrower {
			return loan.ErrUnauthorizedPayer
		}

		interest := accruedInterest(rec.Principal, rec.APYBasisPoints, now-rec.StartTime)
		owed := satAdd(rec.Principal, interest)

		newPaid := rec.PaidAmount + amount
		if newPaid < rec.PaidAmount || newPaid > owed {
			return loan.ErrOverpayment
		}

		// Transfer first: the record must not show a payment that never
		// settled. The surrounding tx unwinds the transfer if the swap
		// loses a race.
		if err := r.Settlements.Transfer(ctx, rec.Borrower, rec.Lender, amount); err != nil {
			return err
		}

		updated := *rec
		updated.PaidAmount = newPaid
		if newPaid >= owed {
			updated.IsActive = false
		}
		if err := r.Records.CompareAndSwap(ctx, rec, &updated); err != nil {
			return err
		}
		dto = toDTO(&updated, interest)
		return nil
	})
	if err != nil {
		return nil, mapTimeout(err)
	}
	return dto, nil
}

// GetLoan is a pure read, open to any caller. Interest in the DTO is
// accrued to the time of the call.
func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanDTO, error) {
	rec, err := u.store.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	interest := accruedInterest(rec.Principal, rec.APYBasisPoints, u.clk.Now().Unix()-rec.StartTime)
	return toDTO(rec, interest), nil
}

// mapTimeout folds a collaborator deadline into the settlement timeout
// error; the record is unchanged in that case and the caller may retry.
func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return settlement.ErrTimeout
	}
	return err
}
