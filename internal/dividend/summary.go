package dividend

import (
	"sort"
	"time"

	"fiitrack/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// InstrumentSummary is one instrument's dividend line items within a month,
// with their decimal subtotal.
type InstrumentSummary struct {
	Ticker   string
	Lines    []domain.EligibilityResult
	Subtotal decimal.Decimal
}

// MonthlySummary groups an investor's dividend payouts by the month they
// were paid in (payment date, not reference month). Pure grouping and
// decimal summation; instruments are ordered by ticker so the output is
// deterministic.
type MonthlySummary struct {
	InvestorID  int64
	Year        int
	Month       time.Month
	Instruments []InstrumentSummary
	Total       decimal.Decimal
}

// Summarize filters eligibility results to those paid in (year, month) and
// folds them into per-instrument subtotals and a grand total.
func Summarize(investorID int64, results []domain.EligibilityResult, year int, month time.Month) MonthlySummary {
	byTicker := map[string]*InstrumentSummary{}
	for _, r := range results {
		if r.PaymentDate.Year() != year || r.PaymentDate.Month() != month {
			continue
		}
		s, ok := byTicker[r.Ticker]
		if !ok {
			s = &InstrumentSummary{Ticker: r.Ticker, Subtotal: decimal.Zero}
			byTicker[r.Ticker] = s
		}
		s.Lines = append(s.Lines, r)
		s.Subtotal = s.Subtotal.Add(r.TotalAmount)
	}

	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	summary := MonthlySummary{
		InvestorID:  investorID,
		Year:        year,
		Month:       month,
		Instruments: []InstrumentSummary{},
		Total:       decimal.Zero,
	}
	for _, ticker := range tickers {
		s := byTicker[ticker]
		summary.Instruments = append(summary.Instruments, *s)
		summary.Total = summary.Total.Add(s.Subtotal)
	}

	return summary
}

func (s InstrumentSummary) FormattedSubtotal() string {
	return FormatBRL(s.Subtotal)
}

func (s MonthlySummary) FormattedTotal() string {
	return FormatBRL(s.Total)
}

// FormatBRL renders a decimal amount as Brazilian currency. This is the
// only place an amount gets rounded; everything upstream carries full
// precision.
func FormatBRL(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, money.BRL).Display()
}
