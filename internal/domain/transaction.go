package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionType_Buy  TransactionType = "buy"
	TransactionType_Sell TransactionType = "sell"
)

// Transaction is a single recorded buy or sell of an FII. Transactions are
// append-only facts: a correction is a new transaction plus a compensating
// entry, never an edit of history.
type Transaction struct {
	TransactionID int64
	InvestorID    int64
	Ticker        string
	Type          TransactionType
	Date          time.Time
	Quantity      int64
	PricePerUnit  decimal.Decimal
	Fees          decimal.Decimal
}

func (t Transaction) GetDate() time.Time { return t.Date }

func (t Transaction) IsBuy() bool { return t.Type == TransactionType_Buy }

func (t Transaction) IsSell() bool { return t.Type == TransactionType_Sell }

// TotalAmount is quantity * price, before fees.
func (t Transaction) TotalAmount() decimal.Decimal {
	return t.PricePerUnit.Mul(decimal.NewFromInt(t.Quantity))
}
