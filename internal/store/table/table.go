// Package table holds go-jet table definitions for the fii schema, written
// in the same shape jet's code generation produces.
package table

import "github.com/go-jet/jet/v2/postgres"

var Fii = newFiiTable("public", "fii", "")

type fiiTable struct {
	postgres.Table

	// Columns
	Pk          postgres.ColumnInteger
	Tag         postgres.ColumnString
	Name        postgres.ColumnString
	Sector      postgres.ColumnString
	CutDay      postgres.ColumnInteger
	RmTimestamp postgres.ColumnTimestampz

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type FiiTable struct {
	fiiTable

	EXCLUDED fiiTable
}

func (a FiiTable) AS(alias string) *FiiTable {
	return newFiiTable(a.SchemaName(), a.TableName(), alias)
}

func newFiiTable(schemaName, tableName, alias string) *FiiTable {
	return &FiiTable{
		fiiTable: newFiiTableImpl(schemaName, tableName, alias),
		EXCLUDED: newFiiTableImpl("", "excluded", ""),
	}
}

func newFiiTableImpl(schemaName, tableName, alias string) fiiTable {
	var (
		PkColumn          = postgres.IntegerColumn("pk")
		TagColumn         = postgres.StringColumn("tag")
		NameColumn        = postgres.StringColumn("name")
		SectorColumn      = postgres.StringColumn("sector")
		CutDayColumn      = postgres.IntegerColumn("cut_day")
		RmTimestampColumn = postgres.TimestampzColumn("rm_timestamp")
		allColumns        = postgres.ColumnList{PkColumn, TagColumn, NameColumn, SectorColumn, CutDayColumn, RmTimestampColumn}
		mutableColumns    = postgres.ColumnList{TagColumn, NameColumn, SectorColumn, CutDayColumn, RmTimestampColumn}
	)

	return fiiTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		Pk:          PkColumn,
		Tag:         TagColumn,
		Name:        NameColumn,
		Sector:      SectorColumn,
		CutDay:      CutDayColumn,
		RmTimestamp: RmTimestampColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}

var FiiTransaction = newFiiTransactionTable("public", "fii_transaction", "")

type fiiTransactionTable struct {
	postgres.Table

	// Columns
	Pk              postgres.ColumnInteger
	UserPk          postgres.ColumnInteger
	FiiPk           postgres.ColumnInteger
	TransactionType postgres.ColumnString
	TransactionDate postgres.ColumnDate
	Quantity        postgres.ColumnInteger
	PricePerUnit    postgres.ColumnFloat
	Fees            postgres.ColumnFloat
	TotalAmount     postgres.ColumnFloat
	RmTimestamp     postgres.ColumnTimestampz

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type FiiTransactionTable struct {
	fiiTransactionTable

	EXCLUDED fiiTransactionTable
}

func (a FiiTransactionTable) AS(alias string) *FiiTransactionTable {
	return newFiiTransactionTable(a.SchemaName(), a.TableName(), alias)
}

func newFiiTransactionTable(schemaName, tableName, alias string) *FiiTransactionTable {
	return &FiiTransactionTable{
		fiiTransactionTable: newFiiTransactionTableImpl(schemaName, tableName, alias),
		EXCLUDED:            newFiiTransactionTableImpl("", "excluded", ""),
	}
}

func newFiiTransactionTableImpl(schemaName, tableName, alias string) fiiTransactionTable {
	var (
		PkColumn              = postgres.IntegerColumn("pk")
		UserPkColumn          = postgres.IntegerColumn("user_pk")
		FiiPkColumn           = postgres.IntegerColumn("fii_pk")
		TransactionTypeColumn = postgres.StringColumn("transaction_type")
		TransactionDateColumn = postgres.DateColumn("transaction_date")
		QuantityColumn        = postgres.IntegerColumn("quantity")
		PricePerUnitColumn    = postgres.FloatColumn("price_per_unit")
		FeesColumn            = postgres.FloatColumn("fees")
		TotalAmountColumn     = postgres.FloatColumn("total_amount")
		RmTimestampColumn     = postgres.TimestampzColumn("rm_timestamp")
		allColumns            = postgres.ColumnList{PkColumn, UserPkColumn, FiiPkColumn, TransactionTypeColumn, TransactionDateColumn, QuantityColumn, PricePerUnitColumn, FeesColumn, TotalAmountColumn, RmTimestampColumn}
		mutableColumns        = postgres.ColumnList{UserPkColumn, FiiPkColumn, TransactionTypeColumn, TransactionDateColumn, QuantityColumn, PricePerUnitColumn, FeesColumn, TotalAmountColumn, RmTimestampColumn}
	)

	return fiiTransactionTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		Pk:              PkColumn,
		UserPk:          UserPkColumn,
		FiiPk:           FiiPkColumn,
		TransactionType: TransactionTypeColumn,
		TransactionDate: TransactionDateColumn,
		Quantity:        QuantityColumn,
		PricePerUnit:    PricePerUnitColumn,
		Fees:            FeesColumn,
		TotalAmount:     TotalAmountColumn,
		RmTimestamp:     RmTimestampColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}

var Dividend = newDividendTable("public", "dividend", "")

type dividendTable struct {
	postgres.Table

	// Columns
	Pk            postgres.ColumnInteger
	UserPk        postgres.ColumnInteger
	FiiPk         postgres.ColumnInteger
	PaymentDate   postgres.ColumnDate
	ReferenceDate postgres.ColumnDate
	AmountPerUnit postgres.ColumnFloat
	RmTimestamp   postgres.ColumnTimestampz

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type DividendTable struct {
	dividendTable

	EXCLUDED dividendTable
}

func (a DividendTable) AS(alias string) *DividendTable {
	return newDividendTable(a.SchemaName(), a.TableName(), alias)
}

func newDividendTable(schemaName, tableName, alias string) *DividendTable {
	return &DividendTable{
		dividendTable: newDividendTableImpl(schemaName, tableName, alias),
		EXCLUDED:      newDividendTableImpl("", "excluded", ""),
	}
}

func newDividendTableImpl(schemaName, tableName, alias string) dividendTable {
	var (
		PkColumn            = postgres.IntegerColumn("pk")
		UserPkColumn        = postgres.IntegerColumn("user_pk")
		FiiPkColumn         = postgres.IntegerColumn("fii_pk")
		PaymentDateColumn   = postgres.DateColumn("payment_date")
		ReferenceDateColumn = postgres.DateColumn("reference_date")
		AmountPerUnitColumn = postgres.FloatColumn("amount_per_unit")
		RmTimestampColumn   = postgres.TimestampzColumn("rm_timestamp")
		allColumns          = postgres.ColumnList{PkColumn, UserPkColumn, FiiPkColumn, PaymentDateColumn, ReferenceDateColumn, AmountPerUnitColumn, RmTimestampColumn}
		mutableColumns      = postgres.ColumnList{UserPkColumn, FiiPkColumn, PaymentDateColumn, ReferenceDateColumn, AmountPerUnitColumn, RmTimestampColumn}
	)

	return dividendTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		Pk:            PkColumn,
		UserPk:        UserPkColumn,
		FiiPk:         FiiPkColumn,
		PaymentDate:   PaymentDateColumn,
		ReferenceDate: ReferenceDateColumn,
		AmountPerUnit: AmountPerUnitColumn,
		RmTimestamp:   RmTimestampColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
