package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lot is a discrete purchase batch, created 1:1 from a buy transaction.
// RemainingQuantity decreases as later sales consume the lot; an exhausted
// lot is kept around for the audit trail rather than deleted.
type Lot struct {
	LotID               uuid.UUID
	SourceTransactionID int64
	InvestorID          int64
	Ticker              string
	OpenDate            time.Time
	Quantity            int64
	RemainingQuantity   int64
	// UnitCost is the purchase price per unit with acquisition fees
	// pro-rated in, so cost basis already includes them.
	UnitCost decimal.Decimal
}

func (l Lot) Exhausted() bool { return l.RemainingQuantity == 0 }

func (l Lot) DeepCopy() *Lot {
	return &Lot{
		LotID:               l.LotID,
		SourceTransactionID: l.SourceTransactionID,
		InvestorID:          l.InvestorID,
		Ticker:              l.Ticker,
		OpenDate:            l.OpenDate,
		Quantity:            l.Quantity,
		RemainingQuantity:   l.RemainingQuantity,
		UnitCost:            l.UnitCost,
	}
}

// SaleMatch records one portion of a sell consumed from one lot. A single
// sell may produce several matches when it spans multiple lots.
type SaleMatch struct {
	SaleTransactionID int64
	LotID             uuid.UUID
	Ticker            string
	SaleDate          time.Time
	Quantity          int64
	CostBasis         decimal.Decimal
	Proceeds          decimal.Decimal
	Gain              decimal.Decimal
}
