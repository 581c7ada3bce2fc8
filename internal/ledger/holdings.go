package ledger

import (
	"sort"
	"time"

	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"
)

// Holdings is the replayed cumulative-quantity timeline for one
// (investor, instrument) pair: a step function from date to net quantity
// held. Steps live in a sorted slice so point-in-time queries are a binary
// search and a late-arriving transaction is handled by rebuilding from the
// full history rather than patching a cached value.
type Holdings struct {
	investorID int64
	ticker     string
	steps      []holdingStep
}

type holdingStep struct {
	date          time.Time
	transactionID int64
	// net quantity held after this transaction applies
	quantity int64
}

// NewHoldings replays a normalized transaction sequence into a Holdings
// timeline. The sequence must already be sorted (see Normalize); the replay
// keeps a running total, adding on buys and subtracting on sells. A sell
// that would drive the total negative returns ErrOversoldPosition naming
// the offending transaction — fatal for this instrument, the caller must
// fix the input data.
func NewHoldings(investorID int64, ticker string, txns []domain.Transaction) (*Holdings, error) {
	h := &Holdings{
		investorID: investorID,
		ticker:     ticker,
		steps:      make([]holdingStep, 0, len(txns)),
	}

	var running int64
	for _, t := range txns {
		switch t.Type {
		case domain.TransactionType_Buy:
			running += t.Quantity
		case domain.TransactionType_Sell:
			if t.Quantity > running {
				return nil, fiitrack_errors.ErrOversoldPosition{
					TransactionID: t.TransactionID,
					Ticker:        t.Ticker,
					Date:          t.Date,
					Requested:     t.Quantity,
					Available:     running,
				}
			}
			running -= t.Quantity
		}
		h.steps = append(h.steps, holdingStep{
			date:          t.Date,
			transactionID: t.TransactionID,
			quantity:      running,
		})
	}

	return h, nil
}

func (h *Holdings) InvestorID() int64 { return h.investorID }

func (h *Holdings) Ticker() string { return h.ticker }

// QuantityAt returns the net quantity held after applying every transaction
// dated on or before the given date. The cut-off date is inclusive.
func (h *Holdings) QuantityAt(date time.Time) int64 {
	// first step strictly after the date; the answer is the step before it
	i := sort.Search(len(h.steps), func(i int) bool {
		return h.steps[i].date.After(date)
	})
	if i == 0 {
		return 0
	}
	return h.steps[i-1].quantity
}

// Quantity returns the net quantity held after the full history.
func (h *Holdings) Quantity() int64 {
	if len(h.steps) == 0 {
		return 0
	}
	return h.steps[len(h.steps)-1].quantity
}

// FirstDate returns the date of the earliest transaction, or a zero time
// when the history is empty.
func (h *Holdings) FirstDate() time.Time {
	if len(h.steps) == 0 {
		return time.Time{}
	}
	return h.steps[0].date
}
