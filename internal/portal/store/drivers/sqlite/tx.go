package sqlite

import "database/sql"

// txStore is a Store bound to an open transaction.
type txStore struct {
	*Store
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }
