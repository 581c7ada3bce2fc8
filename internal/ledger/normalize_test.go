package ledger

import (
	"errors"
	"testing"
	"time"

	fiitrack_errors "fiitrack/internal"
	"fiitrack/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buy(id int64, date time.Time, qty int64, price string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		InvestorID:    1,
		Ticker:        "MXRF11",
		Type:          domain.TransactionType_Buy,
		Date:          date,
		Quantity:      qty,
		PricePerUnit:  dec(price),
		Fees:          decimal.Zero,
	}
}

func sell(id int64, date time.Time, qty int64, price string) domain.Transaction {
	t := buy(id, date, qty, price)
	t.Type = domain.TransactionType_Sell
	return t
}

func TestNormalize(t *testing.T) {
	t.Run("sorts by date keeping submission order on ties", func(t *testing.T) {
		raw := []domain.Transaction{
			buy(3, day(2024, 10, 2), 5, "10.00"),
			buy(1, day(2024, 10, 1), 10, "10.00"),
			buy(2, day(2024, 10, 1), 20, "10.00"),
		}
		events, rejected := Normalize(Events{Transactions: raw})
		require.Empty(t, rejected)

		ids := []int64{}
		for _, txn := range events.Transactions {
			ids = append(ids, txn.TransactionID)
		}
		require.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("rejects malformed transactions without dropping the rest", func(t *testing.T) {
		zeroQty := buy(1, day(2024, 9, 1), 0, "10.00")
		badPrice := buy(2, day(2024, 9, 2), 10, "0")
		negativeFees := buy(3, day(2024, 9, 3), 10, "10.00")
		negativeFees.Fees = dec("-1.00")
		ok := buy(4, day(2024, 9, 4), 10, "10.00")

		events, rejected := Normalize(Events{
			Transactions: []domain.Transaction{zeroQty, badPrice, negativeFees, ok},
		})

		require.Len(t, events.Transactions, 1)
		require.Equal(t, int64(4), events.Transactions[0].TransactionID)

		require.Len(t, rejected, 3)
		for _, r := range rejected {
			var invalid fiitrack_errors.ErrInvalidTransaction
			require.True(t, errors.As(r.Err, &invalid), r.Err)
		}
		require.Equal(t, int64(1), rejected[0].Transaction.TransactionID)
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		bad := buy(1, day(2024, 9, 1), 10, "10.00")
		bad.Type = "transfer"
		events, rejected := Normalize(Events{Transactions: []domain.Transaction{bad}})
		require.Empty(t, events.Transactions)
		require.Len(t, rejected, 1)
	})

	t.Run("sorts dividends by payment date", func(t *testing.T) {
		divs := []domain.DividendPayment{
			{DividendID: 2, PaymentDate: day(2024, 11, 30)},
			{DividendID: 1, PaymentDate: day(2024, 10, 30)},
		}
		events, _ := Normalize(Events{Dividends: divs})
		require.Equal(t, int64(1), events.Dividends[0].DividendID)
		require.Equal(t, int64(2), events.Dividends[1].DividendID)
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		raw := Events{
			Transactions: []domain.Transaction{
				buy(1, day(2024, 10, 1), 10, "10.00"),
				sell(2, day(2024, 10, 1), 5, "11.00"),
				buy(3, day(2024, 9, 30), 7, "9.50"),
			},
			Dividends: []domain.DividendPayment{
				{DividendID: 1, PaymentDate: day(2024, 10, 30), AmountPerUnit: dec("0.11")},
			},
		}
		first, _ := Normalize(raw)
		second, _ := Normalize(raw)
		require.Equal(t, "", cmp.Diff(first, second))
	})
}
