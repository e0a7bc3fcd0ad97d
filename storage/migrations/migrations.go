package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/hop-protocol/hop-relay/db"
	"github.com/hop-protocol/hop-relay/db/types"
	"github.com/hop-protocol/hop-relay/log"
)

//go:embed 0001.sql
var mig001 string

func RunMigrations(logger *log.Logger, database *sql.DB) error {
	migrations := []types.Migration{
		{
			ID:  "storage0001",
			SQL: mig001,
		},
	}

	return db.RunMigrationsDB(logger, database, migrations)
}
