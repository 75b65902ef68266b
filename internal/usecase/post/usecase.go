package post

import (
	"context"
	"time"

	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/post"
	"loanme-backend/pkg/id"
)

type Usecase struct{ repo post.Repository }

func NewUsecase(r post.Repository) *Usecase { return &Usecase{repo: r} }

type CreatePostInput struct {
	Type            post.Type
	Amount          uint64
	APYBasisPoints  uint32
	DurationSeconds uint64
	Description     string
}

type PostDTO struct {
	PostID          string       `json:"post_id"`
	Author          loan.PartyID `json:"author"`
	Type            post.Type    `json:"post_type"`
	Amount          uint64       `json:"amount"`
	APYBasisPoints  uint32       `json:"apy_basis_points"`
	DurationSeconds uint64       `json:"duration_seconds"`
	Description     string       `json:"description"`
	Status          post.Status  `json:"status"`
	LoanID          string       `json:"loan_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

func toDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		PostID:          p.PostID,
		Author:          p.Author,
		Type:            p.Type,
		Amount:          p.Amount,
		APYBasisPoints:  p.APYBasisPoints,
		DurationSeconds: p.DurationSeconds,
		Description:     p.Description,
		Status:          p.Status,
		LoanID:          p.LoanID,
		CreatedAt:       p.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, author loan.PartyID, in CreatePostInput) (*PostDTO, error) {
	if in.Amount == 0 {
		return nil, loan.ErrInvalidPrincipal
	}
	if in.APYBasisPoints > 10_000 {
		return nil, loan.ErrInvalidAPY
	}
	if in.DurationSeconds == 0 {
		return nil, loan.ErrInvalidDuration
	}
	if in.Type != post.TypeBorrow && in.Type != post.TypeLend {
		return nil, post.ErrBadType
	}

	p := &post.Post{
		PostID:          id.NewID32(),
		Author:          author,
		Type:            in.Type,
		Amount:          in.Amount,
		APYBasisPoints:  in.APYBasisPoints,
		DurationSeconds: in.DurationSeconds,
		Description:     in.Description,
		Status:          post.StatusOpen,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, postID string) (*PostDTO, error) {
	p, err := u.repo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) ListOpen(ctx context.Context) ([]*PostDTO, error) {
	ps, err := u.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PostDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toDTO(p))
	}
	return out, nil
}
