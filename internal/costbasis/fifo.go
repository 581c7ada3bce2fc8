// Package costbasis matches sales against purchase lots first-in-first-out
// to produce the cost basis and realized gain/loss used for capital-gains
// reporting. It replays the same normalized transaction sequence as the
// holdings ledger but tracks discrete lots instead of a net quantity; the
// two views must agree at every point (sum of remaining lot quantities ==
// net holdings), which callers cross-check after a replay.
package costbasis

import (
	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result holds the outcome of a full FIFO replay: every lot ever opened
// (exhausted lots included, for the audit trail) and every sale match,
// in processing order.
type Result struct {
	InvestorID int64
	Ticker     string
	Lots       []*domain.Lot
	Matches    []domain.SaleMatch

	// index of the oldest lot with remaining quantity; everything before
	// it is exhausted
	head int
}

// Replay processes a normalized transaction sequence once, enqueueing a lot
// per buy and consuming lots oldest-first per sell. A sell that exceeds the
// open quantity returns ErrOversoldPosition and records nothing for that
// sell — under-matching would silently misstate the realized gain.
func Replay(investorID int64, ticker string, txns []domain.Transaction) (*Result, error) {
	r := &Result{
		InvestorID: investorID,
		Ticker:     ticker,
		Lots:       []*domain.Lot{},
		Matches:    []domain.SaleMatch{},
	}

	for _, t := range txns {
		switch t.Type {
		case domain.TransactionType_Buy:
			r.enqueue(t)
		case domain.TransactionType_Sell:
			if err := r.consume(t); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (r *Result) enqueue(t domain.Transaction) {
	qty := decimal.NewFromInt(t.Quantity)
	// acquisition fees are spread across the lot's units so cost basis
	// includes them
	unitCost := t.PricePerUnit.Add(t.Fees.Div(qty))
	r.Lots = append(r.Lots, &domain.Lot{
		LotID:               uuid.New(),
		SourceTransactionID: t.TransactionID,
		InvestorID:          t.InvestorID,
		Ticker:              t.Ticker,
		OpenDate:            t.Date,
		Quantity:            t.Quantity,
		RemainingQuantity:   t.Quantity,
		UnitCost:            unitCost,
	})
}

func (r *Result) consume(t domain.Transaction) error {
	if t.Quantity > r.OpenQuantity() {
		return fiitrack_errors.ErrOversoldPosition{
			TransactionID: t.TransactionID,
			Ticker:        t.Ticker,
			Date:          t.Date,
			Requested:     t.Quantity,
			Available:     r.OpenQuantity(),
		}
	}

	saleQty := decimal.NewFromInt(t.Quantity)
	remaining := t.Quantity
	for remaining > 0 {
		lot := r.Lots[r.head]
		matched := remaining
		if lot.RemainingQuantity < matched {
			matched = lot.RemainingQuantity
		}
		matchedDec := decimal.NewFromInt(matched)

		costBasis := lot.UnitCost.Mul(matchedDec)
		// sale fees are pro-rated across the sale's matches; no
		// intermediate rounding, only displayed values get rounded
		proceeds := t.PricePerUnit.Mul(matchedDec).Sub(t.Fees.Mul(matchedDec).Div(saleQty))

		r.Matches = append(r.Matches, domain.SaleMatch{
			SaleTransactionID: t.TransactionID,
			LotID:             lot.LotID,
			Ticker:            t.Ticker,
			SaleDate:          t.Date,
			Quantity:          matched,
			CostBasis:         costBasis,
			Proceeds:          proceeds,
			Gain:              proceeds.Sub(costBasis),
		})

		lot.RemainingQuantity -= matched
		remaining -= matched
		if lot.Exhausted() {
			r.head++
		}
	}

	return nil
}

// OpenQuantity returns the total remaining quantity across open lots.
// It must always equal the holdings ledger's net quantity for the same
// transaction history.
func (r *Result) OpenQuantity() int64 {
	var total int64
	for _, lot := range r.Lots[r.head:] {
		total += lot.RemainingQuantity
	}
	return total
}

// OpenLots returns copies of the lots with remaining quantity, oldest
// first, so callers cannot mutate the replay's state.
func (r *Result) OpenLots() []*domain.Lot {
	open := []*domain.Lot{}
	for _, lot := range r.Lots[r.head:] {
		if !lot.Exhausted() {
			open = append(open, lot.DeepCopy())
		}
	}
	return open
}

// MatchesForSale returns the matches produced by one sell transaction, in
// the order its lots were consumed.
func (r *Result) MatchesForSale(saleTransactionID int64) []domain.SaleMatch {
	matches := []domain.SaleMatch{}
	for _, m := range r.Matches {
		if m.SaleTransactionID == saleTransactionID {
			matches = append(matches, m)
		}
	}
	return matches
}

// RealizedGain sums the gain across one sale's matches.
func (r *Result) RealizedGain(saleTransactionID int64) decimal.Decimal {
	gain := decimal.Zero
	for _, m := range r.MatchesForSale(saleTransactionID) {
		gain = gain.Add(m.Gain)
	}
	return gain
}

// TotalRealizedGain sums the gain across every match in the replay.
func (r *Result) TotalRealizedGain() decimal.Decimal {
	gain := decimal.Zero
	for _, m := range r.Matches {
		gain = gain.Add(m.Gain)
	}
	return gain
}

// TotalCostBasis sums cost basis across every match in the replay.
func (r *Result) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.Matches {
		total = total.Add(m.CostBasis)
	}
	return total
}

// AverageUnitCost returns the average cost per open unit, fees included,
// or zero when nothing is held. Matches the portfolio position view of the
// surrounding system.
func (r *Result) AverageUnitCost() decimal.Decimal {
	openQty := r.OpenQuantity()
	if openQty == 0 {
		return decimal.Zero
	}
	invested := decimal.Zero
	for _, lot := range r.Lots[r.head:] {
		invested = invested.Add(lot.UnitCost.Mul(decimal.NewFromInt(lot.RemainingQuantity)))
	}
	return invested.Div(decimal.NewFromInt(openQty))
}
