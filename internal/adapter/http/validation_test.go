package http

import (
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		PartyID string `validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{PartyID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",                      // empty
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex char
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
	} {
		err := cv.Validate(P{PartyID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "PartyID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

func TestHex64Validation(t *testing.T) {
	type P struct {
		LoanID string `validate:"hex64"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{LoanID: strings.Repeat("0f", 32)}); err != nil {
		t.Fatalf("expected valid hex64, got err: %v", err)
	}
	for _, s := range []string{"", strings.Repeat("a", 32), strings.Repeat("Z", 64)} {
		if err := cv.Validate(P{LoanID: s}); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestPostKindValidation(t *testing.T) {
	type P struct {
		Kind string `validate:"postkind"`
	}
	cv := NewValidator()

	for _, s := range []string{"borrow", "lend"} {
		if err := cv.Validate(P{Kind: s}); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}
	for _, s := range []string{"", "BORROW", "offer", "ask"} {
		err := cv.Validate(P{Kind: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Kind", "borrow or lend") {
			t.Fatalf("expected postkind message for %q", s)
		}
	}
}

func TestBasisPointCap(t *testing.T) {
	type P struct {
		APY uint32 `validate:"lte=10000"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{APY: 10_000}); err != nil {
		t.Fatalf("10000 bp must validate, got %v", err)
	}
	err := cv.Validate(P{APY: 10_001})
	if err == nil {
		t.Fatal("10001 bp must fail validation")
	}
	if !containsFieldMsg(ToFieldErrors(err), "APY", "less than or equal to 10000") {
		t.Fatalf("unexpected message: %+v", ToFieldErrors(err))
	}
}
