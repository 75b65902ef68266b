package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	if u.Location() != time.UTC {
		t.Fatalf("nowUTC must be UTC, got %v", u.Location())
	}
	if d := time.Since(u); d < 0 || d > 2*time.Second {
		t.Fatalf("nowUTC too far from now: %v", d)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	wantPrefix := "idemp:ax:post:/loans:"
	if !strings.HasPrefix(k, wantPrefix) {
		t.Fatalf("buildKey prefix mismatch: got %q want prefix %q", k, wantPrefix)
	}
	if !strings.HasSuffix(k, strings.Repeat("b", 32)+":"+strings.Repeat("a", 32)) {
		t.Fatalf("buildKey must end with party and request ids: %q", k)
	}
}

func Test_validReqID(t *testing.T) {
	good := []string{
		strings.Repeat("a", 32),
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		"  " + strings.Repeat("a", 32) + "  ", // trimmed
	}
	for _, s := range good {
		if !validReqID(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	bad := []string{"", "short", strings.Repeat("g", 32), "3f9a6a1b-3d54-ZZbe-8b3a-6b3e8d6b2c88"}
	for _, s := range bad {
		if validReqID(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func Test_parseAxRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseAxRequestAt("1736123456")
	if err != nil || got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds: %v %v", got, err)
	}
	// epoch millis
	got, err = parseAxRequestAt("1736123456789")
	if err != nil || got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch millis: %v %v", got, err)
	}
	// RFC3339 with zone
	if _, err := parseAxRequestAt("2026-08-29T10:00:00+07:00"); err != nil {
		t.Fatalf("rfc3339 with zone: %v", err)
	}
	if _, err := parseAxRequestAt("2026-08-29T10:00:00Z"); err != nil {
		t.Fatalf("rfc3339 zulu: %v", err)
	}
	// rejected
	for _, s := range []string{"", "not-a-time", "2026-08-29T10:00:00"} {
		if _, err := parseAxRequestAt(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
