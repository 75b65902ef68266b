package postmock

import (
	"context"
	"errors"

	domain "loanme-backend/internal/domain/post"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("postmock: method not implemented")

// Repo is a function-backed mock that satisfies post.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	CreateFn      func(ctx context.Context, p *domain.Post) error
	GetByPostIDFn func(ctx context.Context, postID string) (*domain.Post, error)
	ListOpenFn    func(ctx context.Context) ([]*domain.Post, error)
	MarkFundedFn  func(ctx context.Context, postID, loanID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPostID(ctx context.Context, postID string) (*domain.Post, error) {
	if m.GetByPostIDFn != nil {
		return m.GetByPostIDFn(ctx, postID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOpen(ctx context.Context) ([]*domain.Post, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) MarkFunded(ctx context.Context, postID, loanID string) error {
	if m.MarkFundedFn != nil {
		return m.MarkFundedFn(ctx, postID, loanID)
	}
	return nil
}
