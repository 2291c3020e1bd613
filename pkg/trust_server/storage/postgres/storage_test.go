package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenttrust/agenttrust/pkg/util"
)

// testDBPool connects to the database described by the DATABASE_* environment
// variables and empties the given tables. Tests are skipped when no database
// is configured.
func testDBPool(t *testing.T, tableNames ...string) *pgxpool.Pool {
	t.Helper()

	dbHost := os.Getenv("DATABASE_HOST")
	if dbHost == "" {
		t.Skip("DATABASE_HOST is not set")
	}
	dbPort, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		dbPort = 5432
	}

	config := util.PostgresDatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		Database: os.Getenv("DATABASE_NAME"),
		User:     os.Getenv("DATABASE_USER"),
		Password: os.Getenv("DATABASE_PASSWORD"),
		SSLMode:  "disable",
		PoolSize: 5,
	}

	pool, err := util.NewPostgresDBPool(config)
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}

	for _, tableName := range tableNames {
		if _, err := pool.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %q`, tableName)); err != nil {
			t.Fatalf("empty table %s: %v", tableName, err)
		}
	}
	return pool
}
