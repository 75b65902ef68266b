// Package loanaddr derives deterministic loan addresses from the parties
// and the loan start time. A derived address is a 32-byte value that is
// guaranteed not to decode as an ed25519 public key, so nothing can ever
// hold a signing key for it.
package loanaddr

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"

	"filippo.io/edwards25519"
)

// Namespace scopes derived addresses to this ledger; bumping it would
// relocate every loan.
const Namespace = "loanme/ledger/v1"

const (
	seedTag       = "loan"
	derivedMarker = "LoanDerivedAddress"
)

// ErrDerivationExhausted means all 256 bump values produced curve points.
// The probability is negligible, but it must surface rather than loop.
var ErrDerivationExhausted = errors.New("loanaddr: derivation exhausted")

// Derive returns the hex-encoded address for (lender, borrower, startTime).
// It walks the bump byte from 255 down to 0 and returns the first candidate
// that does not decode as a curve point.
func Derive(lender, borrower []byte, startTime int64) (string, error) {
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(startTime))

	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		h.Write([]byte(seedTag))
		h.Write(lender)
		h.Write(borrower)
		h.Write(ts[:])
		h.Write([]byte{byte(bump)})
		h.Write([]byte(Namespace))
		h.Write([]byte(derivedMarker))
		candidate := h.Sum(nil)

		if !onCurve(candidate) {
			return hex.EncodeToString(candidate), nil
		}
	}
	return "", ErrDerivationExhausted
}

// onCurve reports whether b decodes as a valid edwards25519 point, i.e.
// whether some key pair could sign for it.
func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
