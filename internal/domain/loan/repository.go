package loan

import "context"

// RecordStore is the transactional key-value contract the ledger runs on.
// In production it is a gorm/MySQL table; tests use an in-memory double.
type RecordStore interface {
	// Get loads the record at loanID, or ErrNotFound.
	Get(ctx context.Context, loanID string) (*Record, error)

	// CreateIfAbsent inserts r at r.LoanID; ErrDuplicateLoan if any record,
	// active or closed, already lives there.
	CreateIfAbsent(ctx context.Context, r *Record) error

	// CompareAndSwap writes updated only if the stored mutable fields
	// (paid_amount, is_active, is_funded) still match expected.
	// ErrConcurrentModification if the record changed in between,
	// ErrNotFound if it is gone.
	CompareAndSwap(ctx context.Context, expected, updated *Record) error
}
