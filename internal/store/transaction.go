package store

import (
	"context"
	"fmt"

	"fiitrack/internal/domain"
	"fiitrack/internal/store/model"
	. "fiitrack/internal/store/table"

	"github.com/go-jet/jet/v2/postgres"
)

// GetTransactions returns every live buy/sell for the pair, ordered by
// primary key. Primary-key order is the original submission order, which
// the normalizer relies on to tie-break same-date transactions.
func (s *PostgresStore) GetTransactions(ctx context.Context, investorID int64, ticker string) ([]domain.Transaction, error) {
	result := []struct {
		model.FiiTransaction
		model.Fii
	}{}

	query := FiiTransaction.
		SELECT(FiiTransaction.AllColumns, Fii.AllColumns).
		FROM(FiiTransaction.INNER_JOIN(Fii, Fii.Pk.EQ(FiiTransaction.FiiPk))).
		WHERE(
			FiiTransaction.UserPk.EQ(postgres.Int(investorID)).
				AND(Fii.Tag.EQ(postgres.String(ticker))).
				AND(FiiTransaction.RmTimestamp.IS_NULL()).
				AND(Fii.RmTimestamp.IS_NULL()),
		).
		ORDER_BY(FiiTransaction.Pk.ASC())

	err := query.QueryContext(ctx, s.db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for %s: %w", ticker, err)
	}

	out := make([]domain.Transaction, 0, len(result))
	for _, r := range result {
		out = append(out, transactionFromDb(r.FiiTransaction, r.Fii))
	}
	return out, nil
}

func transactionFromDb(t model.FiiTransaction, f model.Fii) domain.Transaction {
	return domain.Transaction{
		TransactionID: t.Pk,
		InvestorID:    t.UserPk,
		Ticker:        f.Tag,
		Type:          domain.TransactionType(t.TransactionType),
		Date:          t.TransactionDate,
		Quantity:      int64(t.Quantity),
		PricePerUnit:  t.PricePerUnit,
		Fees:          t.Fees,
	}
}
