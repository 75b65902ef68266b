package loan

import "errors"

// Domain errors. Handlers translate these into HTTP status codes; nothing
// here is fatal to the process and every failure is scoped to one call.
var (
	ErrInvalidAPY       = errors.New("apy must be between 0 and 10000 basis points")
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidDuration  = errors.New("duration must be greater than zero")

	ErrDuplicateLoan       = errors.New("loan already exists at derived address")
	ErrUnauthorizedCreator = errors.New("caller is not the lender of this loan")
	ErrUnauthorizedFunder  = errors.New("only the lender may fund a loan")
	ErrUnauthorizedPayer   = errors.New("only the borrower may repay a loan")

	ErrNotFound      = errors.New("loan not found")
	ErrClosed        = errors.New("loan is already closed")
	ErrAlreadyFunded = errors.New("loan has already been funded")
	ErrZeroAmount    = errors.New("payment amount must be greater than zero")
	ErrOverpayment   = errors.New("payment exceeds outstanding principal plus interest")

	ErrConcurrentModification = errors.New("loan changed between read and write")
)
