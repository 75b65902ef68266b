package loan

import (
	"encoding/hex"
	"errors"
	"time"
)

// PartyID is the public identity of a marketplace participant
// (32-char lowercase hex). The ledger only ever compares party IDs for
// equality; credentials live with the identity provider.
type PartyID string

var errBadPartyID = errors.New("party id must be 32-char lowercase hex")

// Bytes returns the canonical byte encoding used as an address seed.
func (p PartyID) Bytes() ([]byte, error) {
	if len(p) != 32 {
		return nil, errBadPartyID
	}
	b, err := hex.DecodeString(string(p))
	if err != nil {
		return nil, errBadPartyID
	}
	return b, nil
}

// Record is the persistent state of one loan. Lender, borrower, principal,
// APY, duration and start time are fixed at creation; only PaidAmount,
// IsActive and IsFunded ever change, and only through the ledger usecase.
type Record struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string    `gorm:"column:loan_id;type:char(64);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	Lender          PartyID   `gorm:"column:lender;type:char(32);not null;index:idx_loans_lender" json:"lender"`
	Borrower        PartyID   `gorm:"column:borrower;type:char(32);not null;index:idx_loans_borrower" json:"borrower"`
	Principal       uint64    `gorm:"column:principal;not null" json:"principal"`
	APYBasisPoints  uint32    `gorm:"column:apy_basis_points;not null" json:"apy_basis_points"`
	DurationSeconds uint64    `gorm:"column:duration_seconds;not null" json:"duration_seconds"`
	StartTime       int64     `gorm:"column:start_time;not null" json:"start_time"`
	PaidAmount      uint64    `gorm:"column:paid_amount;not null;default:0" json:"paid_amount"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsFunded        bool      `gorm:"column:is_funded;not null;default:false" json:"is_funded"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Record) TableName() string { return "loans" }
