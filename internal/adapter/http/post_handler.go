package http

import (
	"net/http"

	mid "loanme-backend/internal/adapter/middleware"
	postDomain "loanme-backend/internal/domain/post"
	uc "loanme-backend/internal/usecase/post"

	"github.com/labstack/echo/v4"
)

type PostHandler struct{ uc *uc.Usecase }

func NewPostHandler(u *uc.Usecase) *PostHandler { return &PostHandler{uc: u} }

type createPostReq struct {
	Type            string `json:"post_type" validate:"required,postkind"`
	Amount          uint64 `json:"amount" validate:"required,gt=0"`
	APYBasisPoints  uint32 `json:"apy_basis_points" validate:"lte=10000"`
	DurationSeconds uint64 `json:"duration_seconds" validate:"required,gt=0"`
	Description     string `json:"description"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	caller := mid.Caller(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}

	var req createPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), caller, uc.CreatePostInput{
		Type:            postDomain.Type(req.Type),
		Amount:          req.Amount,
		APYBasisPoints:  req.APYBasisPoints,
		DurationSeconds: req.DurationSeconds,
		Description:     req.Description,
	})
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PostHandler) ListOpenPosts(c echo.Context) error {
	dtos, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusOK, dtos)
}
