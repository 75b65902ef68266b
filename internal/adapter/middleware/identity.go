package middleware

import (
	"net/http"
	"strings"

	"loanme-backend/internal/domain/loan"

	"github.com/labstack/echo/v4"
)

// CallerKey is where RequireParty stores the authenticated caller in the
// echo context.
const CallerKey = "caller"

// RequireParty resolves the authenticated caller from Ax-Party-Id. The
// upstream gateway owns authentication; the ledger only needs a stable
// identity to compare against the loan record.
func RequireParty(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		partyID := strings.TrimSpace(c.Request().Header.Get("Ax-Party-Id"))
		if partyID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Party-Id"})
		}
		if !reHex32.MatchString(partyID) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Ax-Party-Id"})
		}
		c.Set(CallerKey, loan.PartyID(partyID))
		return next(c)
	}
}

// Caller returns the identity stored by RequireParty; empty when absent.
func Caller(c echo.Context) loan.PartyID {
	if v, ok := c.Get(CallerKey).(loan.PartyID); ok {
		return v
	}
	return ""
}
