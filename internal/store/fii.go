package store

import (
	"context"
	"fmt"

	"fiitrack/internal/domain"
	"fiitrack/internal/store/model"
	. "fiitrack/internal/store/table"

	"github.com/go-jet/jet/v2/postgres"
)

// GetInstruments returns the catalog entries for every FII the investor has
// transacted in, ordered by ticker.
func (s *PostgresStore) GetInstruments(ctx context.Context, investorID int64) ([]domain.Instrument, error) {
	result := []model.Fii{}

	query := postgres.
		SELECT(Fii.AllColumns).
		DISTINCT().
		FROM(Fii.INNER_JOIN(FiiTransaction, FiiTransaction.FiiPk.EQ(Fii.Pk))).
		WHERE(
			FiiTransaction.UserPk.EQ(postgres.Int(investorID)).
				AND(FiiTransaction.RmTimestamp.IS_NULL()).
				AND(Fii.RmTimestamp.IS_NULL()),
		).
		ORDER_BY(Fii.Tag.ASC())

	err := query.QueryContext(ctx, s.db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get instruments for investor %d: %w", investorID, err)
	}

	out := make([]domain.Instrument, 0, len(result))
	for _, f := range result {
		out = append(out, instrumentFromDb(f))
	}
	return out, nil
}

func instrumentFromDb(f model.Fii) domain.Instrument {
	instrument := domain.Instrument{Ticker: f.Tag, Name: f.Name}
	if f.Sector != nil {
		instrument.Sector = *f.Sector
	}
	if f.CutDay != nil {
		instrument.CutoffDay = int(*f.CutDay)
	}
	return instrument
}
