package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"testing"
)

// setupTestDB returns a migrated in-memory database private to the test.
// Writer and reader share it through cache=shared under a name derived from
// t.Name().
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", url.PathEscape(t.Name()), connPragmas)

	open := func(maxConns int) *sql.DB {
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			t.Fatalf("open test db: %v", err)
		}
		conn.SetMaxOpenConns(maxConns)
		if err := conn.PingContext(context.Background()); err != nil {
			_ = conn.Close()
			t.Fatalf("ping test db: %v", err)
		}
		return conn
	}

	// The writer opens first and stays open so the shared memory database
	// survives until cleanup.
	db := &DB{Writer: open(1), path: dsn}
	db.Reader = open(4)
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}
