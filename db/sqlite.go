package db

import (
	"database/sql"
	"errors"

	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

const (
	// PrimaryKeyConstrain is the extended sqlite code for a PRIMARY KEY constraint violation
	PrimaryKeyConstrain = 1555
	// UniqueConstrain is the extended sqlite code for a UNIQUE constraint violation
	UniqueConstrain = 2067
)

var (
	ErrNotFound = errors.New("not found")
)

// NewSQLiteDB creates a new SQLite DB
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		pragma journal_mode = WAL;
		pragma synchronous = normal;
		pragma journal_size_limit  = 6144000;
	`)
	return db, err
}

// ReturnErrNotFound maps sql.ErrNoRows into ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// SQLiteErr extracts the driver error, looking also inside meddler wrapped errors
func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsUniqueViolation reports whether err was caused by a UNIQUE / PRIMARY KEY constraint
func IsUniqueViolation(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	code := int(sqliteErr.ExtendedCode)
	return code == UniqueConstrain || code == PrimaryKeyConstrain
}
