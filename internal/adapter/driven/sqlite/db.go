package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// connPragmas apply to every connection. secure_delete zeroes the pages of
// removed history and favorites so cleared credentials do not linger in the
// file. WAL is added only for file-backed databases.
const connPragmas = "_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=secure_delete(ON)&_pragma=cache_size(-64000)"

// dbFileMode keeps the credential store readable by its owner only.
const dbFileMode os.FileMode = 0o600

// DB provides dual reader/writer connections to the credential store.
// The writer is limited to a single connection to avoid "database is locked"
// errors; the reader pool allows up to 4 concurrent readers.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the credential store at dbPath in WAL mode, creating the parent
// directory (0700) and the database file (0600) when they do not exist.
func NewDB(dbPath string) (*DB, error) {
	if err := prepareDBFile(dbPath); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&%s", dbPath, connPragmas)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	if err := writer.Ping(); err != nil {
		writer.Close()
		return nil, fmt.Errorf("ping writer: %w", err)
	}

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.Ping(); err != nil {
		reader.Close()
		writer.Close()
		return nil, fmt.Errorf("ping reader: %w", err)
	}

	return &DB{
		Writer: writer,
		Reader: reader,
		path:   dbPath,
	}, nil
}

func prepareDBFile(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	f, err := os.OpenFile(dbPath, os.O_RDWR|os.O_CREATE, dbFileMode)
	if err != nil {
		return fmt.Errorf("create database file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create database file: %w", err)
	}
	if err := os.Chmod(dbPath, dbFileMode); err != nil {
		return fmt.Errorf("restrict database file: %w", err)
	}
	return nil
}

// Path returns the database file the store was opened on.
func (db *DB) Path() string {
	return db.path
}

// Close closes both reader and writer connections. Returns the first error encountered.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
