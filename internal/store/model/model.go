// Package model holds the row types for the fii schema, laid out the way
// go-jet generates them so query results scan straight into them.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Fii struct {
	Pk          int64 `sql:"primary_key"`
	Tag         string
	Name        string
	Sector      *string
	CutDay      *int32
	RmTimestamp *time.Time
}

type FiiTransaction struct {
	Pk              int64 `sql:"primary_key"`
	UserPk          int64
	FiiPk           int64
	TransactionType string
	TransactionDate time.Time
	Quantity        int32
	PricePerUnit    decimal.Decimal
	Fees            decimal.Decimal
	TotalAmount     decimal.Decimal
	RmTimestamp     *time.Time
}

type Dividend struct {
	Pk            int64 `sql:"primary_key"`
	UserPk        int64
	FiiPk         int64
	PaymentDate   time.Time
	ReferenceDate *time.Time
	AmountPerUnit decimal.Decimal
	RmTimestamp   *time.Time
}
