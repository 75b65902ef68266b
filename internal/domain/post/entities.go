package post

import (
	"errors"
	"time"

	"loanme-backend/internal/domain/loan"
)

type Type string

const (
	TypeBorrow Type = "borrow"
	TypeLend   Type = "lend"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusFunded Status = "funded"
	StatusClosed Status = "closed"
)

var (
	ErrNotFound = errors.New("post not found")
	ErrNotOpen  = errors.New("post is no longer open")
	ErrBadType  = errors.New("post type must be borrow or lend")
)

// Post is a marketplace listing: a borrower asking for a loan or a lender
// offering one. Originating a loan from a post flips it to funded and pins
// the loan id.
type Post struct {
	ID              uint64       `gorm:"primaryKey;column:id" json:"-"`
	PostID          string       `gorm:"column:post_id;type:char(32);not null;uniqueIndex:ux_posts_post_id" json:"post_id"`
	Author          loan.PartyID `gorm:"column:author;type:char(32);not null;index:idx_posts_author" json:"author"`
	Type            Type         `gorm:"column:post_type;type:varchar(8);not null" json:"post_type"`
	Amount          uint64       `gorm:"column:amount;not null" json:"amount"`
	APYBasisPoints  uint32       `gorm:"column:apy_basis_points;not null" json:"apy_basis_points"`
	DurationSeconds uint64       `gorm:"column:duration_seconds;not null" json:"duration_seconds"`
	Description     string       `gorm:"column:description;type:text" json:"description"`
	Status          Status       `gorm:"column:status;type:varchar(8);not null;default:'open'" json:"status"`
	LoanID          string       `gorm:"column:loan_id;type:char(64)" json:"loan_id,omitempty"`
	CreatedAt       time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
