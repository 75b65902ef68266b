package http

import (
	"errors"
	"net/http"

	"loanme-backend/internal/domain/loan"
	"loanme-backend/internal/domain/post"
	"loanme-backend/internal/domain/settlement"
)

// statusFor translates the domain error taxonomy into HTTP status codes.
// Validation failures never mutate anything, so 4xx here always means the
// ledger is unchanged.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrInvalidAPY),
		errors.Is(err, loan.ErrInvalidPrincipal),
		errors.Is(err, loan.ErrInvalidDuration),
		errors.Is(err, loan.ErrZeroAmount),
		errors.Is(err, post.ErrBadType):
		return http.StatusBadRequest
	case errors.Is(err, loan.ErrUnauthorizedCreator),
		errors.Is(err, loan.ErrUnauthorizedFunder),
		errors.Is(err, loan.ErrUnauthorizedPayer):
		return http.StatusForbidden
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, post.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrDuplicateLoan),
		errors.Is(err, loan.ErrClosed),
		errors.Is(err, loan.ErrAlreadyFunded),
		errors.Is(err, loan.ErrOverpayment),
		errors.Is(err, loan.ErrConcurrentModification),
		errors.Is(err, post.ErrNotOpen),
		errors.Is(err, settlement.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, settlement.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errJSON(err error) ErrorResponse { return ErrorResponse{Error: err.Error()} }
