package http

import (
	"net/http"

	mid "loanme-backend/internal/adapter/middleware"
	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *ledger.Usecase }

func NewLoanHandler(uc *ledger.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Lender          string `json:"lender" validate:"required,hex32"`
	Borrower        string `json:"borrower" validate:"required,hex32"`
	Principal       uint64 `json:"principal" validate:"required,gt=0"`
	APYBasisPoints  uint32 `json:"apy_basis_points" validate:"lte=10000"`
	DurationSeconds uint64 `json:"duration_seconds" validate:"required,gt=0"`
	PostID          string `json:"post_id" validate:"omitempty,hex32"`
}

type paymentReq struct {
	Amount uint64 `json:"amount" validate:"required,gt=0"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	caller := mid.Caller(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}

	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.CreateLoan(c.Request().Context(), caller, ledger.CreateLoanInput{
		Lender:          loan.PartyID(req.Lender),
		Borrower:        loan.PartyID(req.Borrower),
		Principal:       req.Principal,
		APYBasisPoints:  req.APYBasisPoints,
		DurationSeconds: req.DurationSeconds,
		PostID:          req.PostID,
	})
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) FundLoan(c echo.Context) error {
	caller := mid.Caller(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}

	dto, err := h.uc.FundLoan(c.Request().Context(), caller, c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) MakePayment(c echo.Context) error {
	caller := mid.Caller(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing caller identity"})
	}

	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.MakePayment(c.Request().Context(), caller, c.Param("loan_id"), req.Amount)
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.GetLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), errJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}
