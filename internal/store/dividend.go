package store

import (
	"context"
	"fmt"

	"fiitrack/internal/domain"
	"fiitrack/internal/store/model"
	. "fiitrack/internal/store/table"

	"github.com/go-jet/jet/v2/postgres"
)

// GetDividends returns every live dividend payment for the pair, ordered by
// primary key so same-date payments keep submission order.
func (s *PostgresStore) GetDividends(ctx context.Context, investorID int64, ticker string) ([]domain.DividendPayment, error) {
	result := []struct {
		model.Dividend
		model.Fii
	}{}

	query := Dividend.
		SELECT(Dividend.AllColumns, Fii.AllColumns).
		FROM(Dividend.INNER_JOIN(Fii, Fii.Pk.EQ(Dividend.FiiPk))).
		WHERE(
			Dividend.UserPk.EQ(postgres.Int(investorID)).
				AND(Fii.Tag.EQ(postgres.String(ticker))).
				AND(Dividend.RmTimestamp.IS_NULL()).
				AND(Fii.RmTimestamp.IS_NULL()),
		).
		ORDER_BY(Dividend.Pk.ASC())

	err := query.QueryContext(ctx, s.db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get dividends for %s: %w", ticker, err)
	}

	out := make([]domain.DividendPayment, 0, len(result))
	for _, r := range result {
		out = append(out, dividendFromDb(r.Dividend, r.Fii))
	}
	return out, nil
}

func dividendFromDb(d model.Dividend, f model.Fii) domain.DividendPayment {
	// payments without an explicit reference date reference the month they
	// are paid in
	reference := d.PaymentDate
	if d.ReferenceDate != nil {
		reference = *d.ReferenceDate
	}
	cutoffDay := 0
	if f.CutDay != nil {
		cutoffDay = int(*f.CutDay)
	}
	return domain.DividendPayment{
		DividendID:     d.Pk,
		InvestorID:     d.UserPk,
		Ticker:         f.Tag,
		PaymentDate:    d.PaymentDate,
		ReferenceMonth: domain.MonthOf(reference),
		AmountPerUnit:  d.AmountPerUnit,
		CutoffDay:      cutoffDay,
	}
}
