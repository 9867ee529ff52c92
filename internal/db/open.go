package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"  // driver: postgres
	_ "modernc.org/sqlite" // driver: sqlite
)

// Driver selects a transcript store backend.
type Driver string

const (
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open constructs a Store for the given driver. For the SQL drivers the
// schema is ensured before returning; for the file driver dsn is the file
// path.
func Open(ctx context.Context, driver Driver, dsn string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(dsn)
	case DriverSQLite:
		if dsn == "" {
			dsn = "file:transcripts.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
		return openSQL(ctx, "sqlite", dsn)
	case DriverPostgres:
		if dsn == "" {
			dsn = "postgres://localhost:5432/nursing_sim?sslmode=disable"
		}
		return openSQL(ctx, "postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
}

func openSQL(ctx context.Context, drvName, dsn string) (Store, error) {
	conn, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		return nil, err
	}
	store := NewSQLStore(conn, drvName)
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
