package dividend

import (
	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"
	"fiitrack/internal/ledger"

	"github.com/shopspring/decimal"
)

// Eligibility computes how much of one dividend an investor receives: the
// net quantity held at the payment's cut-off date times the per-unit
// amount. The cut-off date is derived from the reference month and the
// instrument's configured cut-off day (clamped to the month's length);
// the payment date plays no part here, it only matters for grouping in the
// monthly summary.
//
// A dividend whose cut-off falls before the investor's first transaction
// yields a zero result, not an error. A dividend for an instrument without
// a configured cut-off day returns ErrMissingCutoffDay so callers can tell
// missing configuration apart from bad data.
func Eligibility(holdings *ledger.Holdings, payment domain.DividendPayment) (domain.EligibilityResult, error) {
	if payment.CutoffDay < 1 || payment.CutoffDay > 31 {
		return domain.EligibilityResult{}, fiitrack_errors.ErrMissingCutoffDay{Ticker: payment.Ticker}
	}

	cutoff := payment.ReferenceMonth.CutoffDate(payment.CutoffDay)
	qty := holdings.QuantityAt(cutoff)

	// no rounding on the multiplication; totals are only rounded when
	// displayed, so summing many payouts stays exact
	return domain.EligibilityResult{
		DividendID:       payment.DividendID,
		InvestorID:       holdings.InvestorID(),
		Ticker:           payment.Ticker,
		PaymentDate:      payment.PaymentDate,
		CutoffDate:       cutoff,
		EligibleQuantity: qty,
		AmountPerUnit:    payment.AmountPerUnit,
		TotalAmount:      payment.AmountPerUnit.Mul(decimal.NewFromInt(qty)),
	}, nil
}

// EligibilityAll evaluates every payment against the same holdings
// timeline, in input order.
func EligibilityAll(holdings *ledger.Holdings, payments []domain.DividendPayment) ([]domain.EligibilityResult, error) {
	results := make([]domain.EligibilityResult, 0, len(payments))
	for _, p := range payments {
		result, err := Eligibility(holdings, p)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
