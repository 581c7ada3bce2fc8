package costbasis

import (
	"errors"
	"testing"
	"time"

	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"
	"fiitrack/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(id int64, kind domain.TransactionType, date time.Time, qty int64, price, fees string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		InvestorID:    1,
		Ticker:        "HGLG11",
		Type:          kind,
		Date:          date,
		Quantity:      qty,
		PricePerUnit:  dec(price),
		Fees:          dec(fees),
	}
}

func requireDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

func TestReplay_FIFO(t *testing.T) {
	// buy 10 @ 10.00, buy 10 @ 12.00, sell 15 @ 15.00
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 10, 1), 10, "10.00", "0"),
		txn(2, domain.TransactionType_Buy, day(2024, 10, 2), 10, "12.00", "0"),
		txn(3, domain.TransactionType_Sell, day(2024, 10, 3), 15, "15.00", "0"),
	})
	require.NoError(t, err)

	matches := result.MatchesForSale(3)
	require.Len(t, matches, 2)

	// oldest lot consumed in full first
	require.Equal(t, int64(10), matches[0].Quantity)
	require.Equal(t, result.Lots[0].LotID, matches[0].LotID)
	requireDecEqual(t, "100.00", matches[0].CostBasis)
	requireDecEqual(t, "150.00", matches[0].Proceeds)
	requireDecEqual(t, "50.00", matches[0].Gain)

	require.Equal(t, int64(5), matches[1].Quantity)
	require.Equal(t, result.Lots[1].LotID, matches[1].LotID)
	requireDecEqual(t, "60.00", matches[1].CostBasis)
	requireDecEqual(t, "75.00", matches[1].Proceeds)
	requireDecEqual(t, "15.00", matches[1].Gain)

	requireDecEqual(t, "160.00", result.TotalCostBasis())
	requireDecEqual(t, "65.00", result.TotalRealizedGain())
	requireDecEqual(t, "65.00", result.RealizedGain(3))

	// first lot exhausted but retained; second lot still has 5 open
	require.Len(t, result.Lots, 2)
	require.True(t, result.Lots[0].Exhausted())
	require.Equal(t, int64(5), result.Lots[1].RemainingQuantity)
	require.Equal(t, int64(5), result.OpenQuantity())

	open := result.OpenLots()
	require.Len(t, open, 1)
	require.Equal(t, int64(2), open[0].SourceTransactionID)
}

func TestReplay_Oversell(t *testing.T) {
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 10, 1), 10, "10.00", "0"),
		txn(2, domain.TransactionType_Sell, day(2024, 10, 2), 11, "15.00", "0"),
	})
	require.Nil(t, result)

	var oversold fiitrack_errors.ErrOversoldPosition
	require.True(t, errors.As(err, &oversold), err)
	require.Equal(t, int64(2), oversold.TransactionID)
	require.Equal(t, int64(1), oversold.Shortfall())
}

func TestReplay_BuyFeesRaiseUnitCost(t *testing.T) {
	// fees spread over the lot: (10 * 10.00 + 2.50) / 10 = 10.25 per unit
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 10, 1), 10, "10.00", "2.50"),
		txn(2, domain.TransactionType_Sell, day(2024, 10, 2), 4, "11.00", "0"),
	})
	require.NoError(t, err)

	requireDecEqual(t, "10.25", result.Lots[0].UnitCost)

	matches := result.MatchesForSale(2)
	require.Len(t, matches, 1)
	requireDecEqual(t, "41.00", matches[0].CostBasis)
	requireDecEqual(t, "44.00", matches[0].Proceeds)
	requireDecEqual(t, "3.00", matches[0].Gain)
}

func TestReplay_SaleFeesProRated(t *testing.T) {
	// sale fee of 3.00 across 15 units: 2.00 against the 10-unit match,
	// 1.00 against the 5-unit match
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 10, 1), 10, "10.00", "0"),
		txn(2, domain.TransactionType_Buy, day(2024, 10, 2), 10, "12.00", "0"),
		txn(3, domain.TransactionType_Sell, day(2024, 10, 3), 15, "15.00", "3.00"),
	})
	require.NoError(t, err)

	matches := result.MatchesForSale(3)
	require.Len(t, matches, 2)
	requireDecEqual(t, "148.00", matches[0].Proceeds)
	requireDecEqual(t, "74.00", matches[1].Proceeds)
	requireDecEqual(t, "62.00", result.TotalRealizedGain())
}

func TestReplay_SellSpanningManyLots(t *testing.T) {
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 3, "10.00", "0"),
		txn(2, domain.TransactionType_Buy, day(2024, 2, 1), 3, "11.00", "0"),
		txn(3, domain.TransactionType_Buy, day(2024, 3, 1), 3, "12.00", "0"),
		txn(4, domain.TransactionType_Sell, day(2024, 4, 1), 8, "13.00", "0"),
	})
	require.NoError(t, err)

	matches := result.MatchesForSale(4)
	require.Len(t, matches, 3)
	require.Equal(t, int64(3), matches[0].Quantity)
	require.Equal(t, int64(3), matches[1].Quantity)
	require.Equal(t, int64(2), matches[2].Quantity)
	requireDecEqual(t, "17.00", result.TotalRealizedGain())
	require.Equal(t, int64(1), result.OpenQuantity())
}

func TestReplay_AverageUnitCost(t *testing.T) {
	result, err := Replay(1, "HGLG11", []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 10, "10.00", "0"),
		txn(2, domain.TransactionType_Buy, day(2024, 2, 1), 10, "12.00", "0"),
	})
	require.NoError(t, err)
	requireDecEqual(t, "11.00", result.AverageUnitCost())

	empty, err := Replay(1, "HGLG11", nil)
	require.NoError(t, err)
	requireDecEqual(t, "0", empty.AverageUnitCost())
}

// Lot-sum consistency: at every prefix of a valid history, the sum of
// remaining lot quantities must equal the holdings ledger's net quantity.
// The two engines replay the same events with independent state.
func TestReplay_AgreesWithHoldingsLedger(t *testing.T) {
	histories := map[string][]domain.Transaction{
		"buys only": {
			txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 10, "10.00", "0"),
			txn(2, domain.TransactionType_Buy, day(2024, 2, 1), 20, "11.00", "1.50"),
		},
		"interleaved buys and sells": {
			txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 10, "10.00", "0"),
			txn(2, domain.TransactionType_Sell, day(2024, 1, 15), 4, "11.00", "0"),
			txn(3, domain.TransactionType_Buy, day(2024, 2, 1), 20, "9.00", "0"),
			txn(4, domain.TransactionType_Sell, day(2024, 2, 15), 25, "12.00", "2.00"),
			txn(5, domain.TransactionType_Buy, day(2024, 3, 1), 7, "10.50", "0"),
		},
		"position closed out": {
			txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 5, "10.00", "0"),
			txn(2, domain.TransactionType_Sell, day(2024, 1, 2), 5, "10.00", "0"),
		},
	}

	for name, history := range histories {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= len(history); i++ {
				prefix := history[:i]
				holdings, err := ledger.NewHoldings(1, "HGLG11", prefix)
				require.NoError(t, err)
				result, err := Replay(1, "HGLG11", prefix)
				require.NoError(t, err)
				require.Equal(t, holdings.Quantity(), result.OpenQuantity(),
					"prefix of %d transactions", i)
			}
		})
	}
}

// Determinism: identical input yields identical output, match for match.
func TestReplay_Deterministic(t *testing.T) {
	history := []domain.Transaction{
		txn(1, domain.TransactionType_Buy, day(2024, 1, 1), 10, "10.00", "1.00"),
		txn(2, domain.TransactionType_Buy, day(2024, 2, 1), 20, "11.00", "0"),
		txn(3, domain.TransactionType_Sell, day(2024, 3, 1), 15, "12.00", "2.00"),
	}
	first, err := Replay(1, "HGLG11", history)
	require.NoError(t, err)
	second, err := Replay(1, "HGLG11", history)
	require.NoError(t, err)

	require.Equal(t, len(first.Matches), len(second.Matches))
	for i := range first.Matches {
		require.Equal(t, first.Matches[i].Quantity, second.Matches[i].Quantity)
		requireDecEqual(t, first.Matches[i].Gain.String(), second.Matches[i].Gain)
		requireDecEqual(t, first.Matches[i].CostBasis.String(), second.Matches[i].CostBasis)
	}
	requireDecEqual(t, first.TotalRealizedGain().String(), second.TotalRealizedGain())
}
