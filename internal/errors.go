package fiitrack_errors

import (
	"fmt"
	"time"
)

// ErrInvalidTransaction flags a malformed input record. The record is
// excluded from the computation; other records are unaffected.
type ErrInvalidTransaction struct {
	TransactionID int64
	Ticker        string
	Reason        string
}

func (e ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction %d (%s): %s", e.TransactionID, e.Ticker, e.Reason)
}

// ErrOversoldPosition flags a sell that exceeds the holdings available
// immediately before it. Fatal for the instrument's computation: clamping
// or partial matching would silently misstate tax and dividend figures.
type ErrOversoldPosition struct {
	TransactionID int64
	Ticker        string
	Date          time.Time
	Requested     int64
	Available     int64
}

func (e ErrOversoldPosition) Shortfall() int64 {
	return e.Requested - e.Available
}

func (e ErrOversoldPosition) Error() string {
	return fmt.Sprintf(
		"transaction %d oversells %s on %s: sell of %d exceeds %d held (shortfall %d)",
		e.TransactionID, e.Ticker, e.Date.Format("2006-01-02"), e.Requested, e.Available, e.Shortfall(),
	)
}

// ErrMissingCutoffDay is a configuration gap, distinct from bad data: the
// dividend's instrument has no cut-off day configured.
type ErrMissingCutoffDay struct {
	Ticker string
}

func (e ErrMissingCutoffDay) Error() string {
	return fmt.Sprintf("no dividend cut-off day configured for %s", e.Ticker)
}
