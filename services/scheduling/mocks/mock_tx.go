// This file contains manual additions to the automatically generated mocks
package mocks

import (
	"github.com/jmoiron/sqlx"
)

// FakeTx satisfies scheduling.Tx for usecase tests. The repository mocks
// never dereference the ext argument, so the embedded ExtContext stays nil.
type FakeTx struct {
	sqlx.ExtContext
	Committed  bool
	RolledBack bool
	CommitErr  error
}

func (t *FakeTx) Commit() error {
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback() error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}
