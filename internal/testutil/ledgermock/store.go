package ledgermock

import (
	"context"
	"sync"

	"loanme-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ loan.RecordStore = (*Store)(nil)

// Store is an in-memory loan.RecordStore with real compare-and-swap
// semantics, so usecase tests can exercise lost-race paths without a DB.
type Store struct {
	mu   sync.Mutex
	recs map[string]loan.Record
}

func NewStore() *Store { return &Store{recs: make(map[string]loan.Record)} }

func (s *Store) Get(ctx context.Context, loanID string) (*loan.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recs[loanID]
	if !ok {
		return nil, loan.ErrNotFound
	}
	cp := r
	return &cp, nil
}

func (s *Store) CreateIfAbsent(ctx context.Context, r *loan.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[r.LoanID]; ok {
		return loan.ErrDuplicateLoan
	}
	s.recs[r.LoanID] = *r
	return nil
}

func (s *Store) CompareAndSwap(ctx context.Context, expected, updated *loan.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.recs[expected.LoanID]
	if !ok {
		return loan.ErrNotFound
	}
	if cur.PaidAmount != expected.PaidAmount || cur.IsActive != expected.IsActive || cur.IsFunded != expected.IsFunded {
		return loan.ErrConcurrentModification
	}
	s.recs[expected.LoanID] = *updated
	return nil
}

// Put seeds a record directly, bypassing the create path.
func (s *Store) Put(r *loan.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[r.LoanID] = *r
}
