package ledger

import (
	"sort"

	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"

	"github.com/shopspring/decimal"
)

// Events is the raw input feed for one (investor, instrument) pair, in the
// order the records were originally submitted. That submission order is the
// tie-break for same-date events, so callers must not reorder the slices.
type Events struct {
	Transactions []domain.Transaction
	Dividends    []domain.DividendPayment
}

// RejectedTransaction pairs an excluded record with the validation error
// that excluded it.
type RejectedTransaction struct {
	Transaction domain.Transaction
	Err         error
}

// Normalize validates and chronologically orders a raw event set. Malformed
// transactions are reported and excluded without aborting the rest; the
// returned sequences are sorted by date with same-date records kept in
// submission order (stable sort), so the output is deterministic for a
// given input order.
//
// Oversell detection is not done here: it needs the full replayed timeline
// and belongs to the holdings ledger.
func Normalize(events Events) (Events, []RejectedTransaction) {
	rejected := []RejectedTransaction{}
	txns := make([]domain.Transaction, 0, len(events.Transactions))
	for _, t := range events.Transactions {
		if err := validateTransaction(t); err != nil {
			rejected = append(rejected, RejectedTransaction{Transaction: t, Err: err})
			continue
		}
		txns = append(txns, t)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	dividends := make([]domain.DividendPayment, len(events.Dividends))
	copy(dividends, events.Dividends)
	sort.SliceStable(dividends, func(i, j int) bool {
		return dividends[i].PaymentDate.Before(dividends[j].PaymentDate)
	})

	return Events{Transactions: txns, Dividends: dividends}, rejected
}

func validateTransaction(t domain.Transaction) error {
	if t.Type != domain.TransactionType_Buy && t.Type != domain.TransactionType_Sell {
		return fiitrack_errors.ErrInvalidTransaction{
			TransactionID: t.TransactionID,
			Ticker:        t.Ticker,
			Reason:        "unknown transaction type '" + string(t.Type) + "'",
		}
	}
	if t.Quantity <= 0 {
		return fiitrack_errors.ErrInvalidTransaction{
			TransactionID: t.TransactionID,
			Ticker:        t.Ticker,
			Reason:        "quantity must be greater than 0",
		}
	}
	if t.PricePerUnit.LessThanOrEqual(decimal.Zero) {
		return fiitrack_errors.ErrInvalidTransaction{
			TransactionID: t.TransactionID,
			Ticker:        t.Ticker,
			Reason:        "price per unit must be greater than 0",
		}
	}
	if t.Fees.IsNegative() {
		return fiitrack_errors.ErrInvalidTransaction{
			TransactionID: t.TransactionID,
			Ticker:        t.Ticker,
			Reason:        "fees must not be negative",
		}
	}
	return nil
}
