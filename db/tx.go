package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Tx is a sql.Tx that runs callbacks once it is committed or rolled back
type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
}

func NewTx(ctx context.Context, db *sql.DB) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}

func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

func (s *Tx) Rollback() error {
	if err := s.Tx.Rollback(); err != nil {
		return err
	}
	for _, cb := range s.rollbackCallbacks {
		cb()
	}
	return nil
}

// RunInTx executes fn inside a transaction, committing on success and rolling back otherwise
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *Tx) error) error {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			return fmt.Errorf("%w (error while rolling back tx: %s)", err, errRollback.Error())
		}
		return err
	}
	return tx.Commit()
}
