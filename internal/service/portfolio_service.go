package service

import (
	"context"
	"fmt"
	"time"

	"fiitrack/internal/costbasis"
	"fiitrack/internal/dividend"
	"fiitrack/internal/domain"
	"fiitrack/internal/ledger"

	"github.com/phuslu/log"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source portfolio_service.go -destination mocks/store_mock.go -package service_mocks

// Store supplies the two input feeds from the persistence layer. Records
// must come back ordered by primary key so same-date events keep their
// original submission order through normalization.
type Store interface {
	GetInstruments(ctx context.Context, investorID int64) ([]domain.Instrument, error)
	GetTransactions(ctx context.Context, investorID int64, ticker string) ([]domain.Transaction, error)
	GetDividends(ctx context.Context, investorID int64, ticker string) ([]domain.DividendPayment, error)
}

// Position is the recomputed per-instrument snapshot: what the surrounding
// system caches in its holdings table, derived here from scratch on demand.
type Position struct {
	InvestorID     int64
	Ticker         string
	Quantity       int64
	AveragePrice   decimal.Decimal
	TotalInvested  decimal.Decimal
	TotalDividends decimal.Decimal
}

// GainsReport is the tax-report view of one instrument's sale history.
type GainsReport struct {
	InvestorID     int64
	Ticker         string
	Matches        []domain.SaleMatch
	OpenLots       []*domain.Lot
	TotalCostBasis decimal.Decimal
	TotalGain      decimal.Decimal
}

type PortfolioService interface {
	QuantityAt(ctx context.Context, investorID int64, ticker string, date time.Time) (int64, error)
	MonthlyDividendSummary(ctx context.Context, investorID int64, year int, month time.Month) (*dividend.MonthlySummary, error)
	RealizedGains(ctx context.Context, investorID int64, ticker string) (*GainsReport, error)
	GetPosition(ctx context.Context, investorID int64, ticker string) (*Position, error)
}

func NewPortfolioService(store Store) PortfolioService {
	return portfolioServiceHandler{store: store}
}

type portfolioServiceHandler struct {
	store Store
}

// loadHoldings pulls the complete transaction history for the pair and
// replays it. Always the full history: mixing a cached partial total with
// newly appended events would silently corrupt every downstream result.
func (h portfolioServiceHandler) loadHoldings(ctx context.Context, investorID int64, ticker string) (ledger.Events, *ledger.Holdings, error) {
	txns, err := h.store.GetTransactions(ctx, investorID, ticker)
	if err != nil {
		return ledger.Events{}, nil, fmt.Errorf("failed to load transactions for %s: %w", ticker, err)
	}
	dividends, err := h.store.GetDividends(ctx, investorID, ticker)
	if err != nil {
		return ledger.Events{}, nil, fmt.Errorf("failed to load dividends for %s: %w", ticker, err)
	}

	events, rejected := ledger.Normalize(ledger.Events{
		Transactions: txns,
		Dividends:    dividends,
	})
	for _, r := range rejected {
		log.Warn().
			Int64("investor", investorID).
			Str("ticker", ticker).
			Int64("transaction", r.Transaction.TransactionID).
			Err(r.Err).
			Msg("excluded invalid transaction")
	}

	holdings, err := ledger.NewHoldings(investorID, ticker, events.Transactions)
	if err != nil {
		return ledger.Events{}, nil, err
	}
	return events, holdings, nil
}

func (h portfolioServiceHandler) QuantityAt(ctx context.Context, investorID int64, ticker string, date time.Time) (int64, error) {
	_, holdings, err := h.loadHoldings(ctx, investorID, ticker)
	if err != nil {
		return 0, err
	}
	return holdings.QuantityAt(date), nil
}

func (h portfolioServiceHandler) MonthlyDividendSummary(ctx context.Context, investorID int64, year int, month time.Month) (*dividend.MonthlySummary, error) {
	instruments, err := h.store.GetInstruments(ctx, investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}

	allResults := []domain.EligibilityResult{}
	for _, instrument := range instruments {
		events, holdings, err := h.loadHoldings(ctx, investorID, instrument.Ticker)
		if err != nil {
			return nil, err
		}
		results, err := dividend.EligibilityAll(holdings, events.Dividends)
		if err != nil {
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	summary := dividend.Summarize(investorID, allResults, year, month)
	return &summary, nil
}

func (h portfolioServiceHandler) RealizedGains(ctx context.Context, investorID int64, ticker string) (*GainsReport, error) {
	events, holdings, err := h.loadHoldings(ctx, investorID, ticker)
	if err != nil {
		return nil, err
	}
	result, err := costbasis.Replay(investorID, ticker, events.Transactions)
	if err != nil {
		return nil, err
	}
	if err := checkLotConsistency(holdings, result); err != nil {
		return nil, err
	}

	return &GainsReport{
		InvestorID:     investorID,
		Ticker:         ticker,
		Matches:        result.Matches,
		OpenLots:       result.OpenLots(),
		TotalCostBasis: result.TotalCostBasis(),
		TotalGain:      result.TotalRealizedGain(),
	}, nil
}

func (h portfolioServiceHandler) GetPosition(ctx context.Context, investorID int64, ticker string) (*Position, error) {
	events, holdings, err := h.loadHoldings(ctx, investorID, ticker)
	if err != nil {
		return nil, err
	}
	result, err := costbasis.Replay(investorID, ticker, events.Transactions)
	if err != nil {
		return nil, err
	}
	if err := checkLotConsistency(holdings, result); err != nil {
		return nil, err
	}
	eligibilities, err := dividend.EligibilityAll(holdings, events.Dividends)
	if err != nil {
		return nil, err
	}

	totalDividends := decimal.Zero
	for _, e := range eligibilities {
		totalDividends = totalDividends.Add(e.TotalAmount)
	}

	quantity := holdings.Quantity()
	averagePrice := result.AverageUnitCost()
	return &Position{
		InvestorID:     investorID,
		Ticker:         ticker,
		Quantity:       quantity,
		AveragePrice:   averagePrice,
		TotalInvested:  averagePrice.Mul(decimal.NewFromInt(quantity)),
		TotalDividends: totalDividends,
	}, nil
}

// checkLotConsistency cross-checks the two independent replays of the same
// history: net holdings must equal the sum of remaining lot quantities.
// A mismatch means a bug, not bad data.
func checkLotConsistency(holdings *ledger.Holdings, result *costbasis.Result) error {
	if holdings.Quantity() != result.OpenQuantity() {
		return fmt.Errorf(
			"lot/holdings mismatch for %s: ledger has %d, open lots sum to %d",
			holdings.Ticker(), holdings.Quantity(), result.OpenQuantity(),
		)
	}
	return nil
}
