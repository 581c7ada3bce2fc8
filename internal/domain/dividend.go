package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Month identifies a dividend's reference month (the month the payout
// relates to, which may differ from the month it is paid in).
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// LastDay returns the number of days in the month, leap years included.
func (m Month) LastDay() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CutoffDate returns day `day` of the month as a UTC date, clamped to the
// month's last day when the configured day does not exist (e.g. day 31
// against February clamps to the 28th or 29th).
func (m Month) CutoffDate(day int) time.Time {
	if last := m.LastDay(); day > last {
		day = last
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// DividendPayment is one per-unit payout declared by an FII.
// CutoffDay comes from instrument-level configuration; 0 means the
// instrument has no cut-off day configured.
type DividendPayment struct {
	DividendID     int64
	InvestorID     int64
	Ticker         string
	PaymentDate    time.Time
	ReferenceMonth Month
	AmountPerUnit  decimal.Decimal
	CutoffDay      int
}

func (d DividendPayment) GetDate() time.Time { return d.PaymentDate }

// EligibilityResult is the derived payout of one dividend for one investor.
// Always recomputed from the transaction history, never stored.
type EligibilityResult struct {
	DividendID       int64
	InvestorID       int64
	Ticker           string
	PaymentDate      time.Time
	CutoffDate       time.Time
	EligibleQuantity int64
	AmountPerUnit    decimal.Decimal
	TotalAmount      decimal.Decimal
}
