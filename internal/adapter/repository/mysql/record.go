package mysql

import (
	"context"
	"errors"

	loanDomain "loanme-backend/internal/domain/loan"

	"gorm.io/gorm"
)

// RecordStore implements loan.RecordStore on a gorm DB (or a gorm tx when
// reached through the unit of work).
type RecordStore struct{ db *gorm.DB }

func NewRecordStore(db *gorm.DB) *RecordStore { return &RecordStore{db: db} }

func (r *RecordStore) Get(ctx context.Context, loanID string) (*loanDomain.Record, error) {
	var out loanDomain.Record
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *RecordStore) CreateIfAbsent(ctx context.Context, rec *loanDomain.Record) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return loanDomain.ErrDuplicateLoan
	}
	return err
}

// CompareAndSwap guards the UPDATE on the mutable columns so that of two
// racing writers only the one that saw the current state wins.
func (r *RecordStore) CompareAndSwap(ctx context.Context, expected, updated *loanDomain.Record) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Record{}).
		Where("loan_id = ? AND paid_amount = ? AND is_active = ? AND is_funded = ?",
			expected.LoanID, expected.PaidAmount, expected.IsActive, expected.IsFunded).
		Updates(map[string]any{
			"paid_amount": updated.PaidAmount,
			"is_active":   updated.IsActive,
			"is_funded":   updated.IsFunded,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the record is gone or someone got there first.
		var n int64
		if err := r.db.WithContext(ctx).Model(&loanDomain.Record{}).
			Where("loan_id = ?", expected.LoanID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return loanDomain.ErrNotFound
		}
		return loanDomain.ErrConcurrentModification
	}
	return nil
}
