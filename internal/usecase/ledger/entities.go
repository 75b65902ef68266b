package ledger

import (
	"time"

	"loanme-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	Lender          loan.PartyID
	Borrower        loan.PartyID
	Principal       uint64
	APYBasisPoints  uint32
	DurationSeconds uint64
	// PostID, when set, marks the originating marketplace post funded in
	// the same transaction as the loan creation.
	PostID string
}

type LoanDTO struct {
	LoanID          string       `json:"loan_id"`
	Lender          loan.PartyID `json:"lender"`
	Borrower        loan.PartyID `json:"borrower"`
	Principal       uint64       `json:"principal"`
	APYBasisPoints  uint32       `json:"apy_basis_points"`
	DurationSeconds uint64       `json:"duration_seconds"`
	StartTime       int64        `json:"start_time"`
	PaidAmount      uint64       `json:"paid_amount"`
	AccruedInterest uint64       `json:"accrued_interest"`
	TotalOwed       uint64       `json:"total_owed"`
	IsActive        bool         `json:"is_active"`
	IsFunded        bool         `json:"is_funded"`
	CreatedAt       time.Time    `json:"created_at"`
}

func toDTO(r *loan.Record, interest uint64) *LoanDTO {
	return &LoanDTO{
		LoanID:          r.LoanID,
		Lender:          r.Lender,
		Borrower:        r.Borrower,
		Principal:       r.Principal,
		APYBasisPoints:  r.APYBasisPoints,
		DurationSeconds: r.DurationSeconds,
		StartTime:       r.StartTime,
		PaidAmount:      r.PaidAmount,
		AccruedInterest: interest,
		TotalOwed:       satAdd(r.Principal, interest),
		IsActive:        r.IsActive,
		IsFunded:        r.IsFunded,
		CreatedAt:       r.CreatedAt,
	}
}
