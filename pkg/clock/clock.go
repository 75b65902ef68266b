package clock

import "time"

// Clock is injected wherever the ledger needs "now", so tests can pin time.
// Within a single operation the value is read once and treated as monotonic;
// no global synchronization is assumed across callers.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns T. Test double.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }
