// Package store reads the transaction and dividend feeds from Postgres.
// It is the only package that talks to the database; everything it returns
// is a plain domain value, so the computation core stays free of any
// persistence concern. Soft-deleted rows (rm_timestamp set) are filtered
// here and never reach the engine.
package store

import (
	"database/sql"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}
