package mysql

import (
	"context"
	"errors"

	postDomain "loanme-backend/internal/domain/post"

	"gorm.io/gorm"
)

type PostRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) *PostRepository { return &PostRepository{db: db} }

func (r *PostRepository) Create(ctx context.Context, p *postDomain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepository) GetByPostID(ctx context.Context, postID string) (*postDomain.Post, error) {
	var out postDomain.Post
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, postDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *PostRepository) ListOpen(ctx context.Context) ([]*postDomain.Post, error) {
	var out []*postDomain.Post
	res := r.db.WithContext(ctx).
		Where("status = ?", postDomain.StatusOpen).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// MarkFunded is a guarded open→funded transition; losing the guard means
// the post was taken by another loan or withdrawn.
func (r *PostRepository) MarkFunded(ctx context.Context, postID, loanID string) error {
	res := r.db.WithContext(ctx).Model(&postDomain.Post{}).
		Where("post_id = ? AND status = ?", postID, postDomain.StatusOpen).
		Updates(map[string]any{"status": postDomain.StatusFunded, "loan_id": loanID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&postDomain.Post{}).
			Where("post_id = ?", postID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return postDomain.ErrNotFound
		}
		return postDomain.ErrNotOpen
	}
	return nil
}
