package post

import "context"

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByPostID(ctx context.Context, postID string) (*Post, error)
	ListOpen(ctx context.Context) ([]*Post, error)

	// MarkFunded flips an open post to funded and records the loan it
	// originated. ErrNotOpen if the post was already funded or closed.
	MarkFunded(ctx context.Context, postID, loanID string) error
}
