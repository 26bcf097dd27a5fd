package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// signatureKey is the metadata row identifying which application wrote the
// store file. Restore refuses files whose signature does not match.
const signatureKey = "app_signature"

// Store owns the SQLite database file: it opens the connection, applies
// migrations, stamps the application signature, and supports being closed,
// reset, or swapped out for a restored backup file. It is constructed
// explicitly and passed to the layers that need it; there is no package-level
// instance.
type Store struct {
	mu        sync.RWMutex
	db        *sql.DB
	path      string
	signature string
}

// Open opens (creating if necessary) the store file at path, applies
// migrations, and writes the application signature if the file has none yet.
func Open(path string, signature string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	s := &Store{path: path, signature: signature}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite store at %s: %w", s.path, err)
	}
	// Single-writer access model: one connection avoids SQLITE_BUSY and makes
	// :memory: stores work with database/sql's pooling.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return fmt.Errorf("failed to set journal mode: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite store: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(
		"INSERT OR IGNORE INTO _metadata (key, value) VALUES (?, ?)",
		signatureKey, s.signature,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to write app signature: %w", err)
	}

	s.db = db
	return nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Conn returns the live database handle. Callers must not retain it across a
// Replace or Reset.
func (s *Store) Conn() *sql.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Signature returns the application signature this store stamps and expects.
func (s *Store) Signature() string {
	return s.signature
}

// Checkpoint flushes the WAL into the main database file so a plain file copy
// captures all committed data.
func (s *Store) Checkpoint(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint store: %w", err)
	}
	return nil
}

// CopyTo copies the store file to destPath. Callers should Checkpoint first
// so the WAL is folded into the main file.
func (s *Store) CopyTo(destPath string) error {
	if s.path == ":memory:" {
		return fmt.Errorf("cannot copy an in-memory store")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyFile(s.path, destPath)
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Replace swaps the live store file with the file at sourcePath and reopens.
// The caller is expected to have verified the source's signature first.
func (s *Store) Replace(sourcePath string) error {
	if s.path == ":memory:" {
		return fmt.Errorf("cannot replace an in-memory store")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close store before replace: %w", err)
		}
		s.db = nil
	}
	s.removeSidecars()

	if err := copyFile(sourcePath, s.path); err != nil {
		// Try to come back up on the old file regardless.
		if reopenErr := s.open(); reopenErr != nil {
			return fmt.Errorf("failed to copy replacement store (%w) and failed to reopen original: %v", err, reopenErr)
		}
		return fmt.Errorf("failed to copy replacement store: %w", err)
	}

	return s.open()
}

// Reset deletes the store file and reinitializes an empty store.
func (s *Store) Reset() error {
	if s.path == ":memory:" {
		return fmt.Errorf("cannot reset an in-memory store")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close store before reset: %w", err)
		}
		s.db = nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove store file: %w", err)
	}
	s.removeSidecars()

	return s.open()
}

// removeSidecars deletes WAL and shared-memory files left next to the store.
func (s *Store) removeSidecars() {
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")
}

// ReadSignature opens the SQLite file at path read-only and returns the
// application signature recorded in its metadata table. It returns an empty
// string if the file has no metadata table or no signature row.
func ReadSignature(ctx context.Context, path string) (string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fmt.Errorf("failed to open candidate store at %s: %w", path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var tableName string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = '_metadata'",
	).Scan(&tableName)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to inspect candidate store: %w", err)
	}

	var signature string
	err = db.QueryRowContext(ctx,
		"SELECT value FROM _metadata WHERE key = ?", signatureKey,
	).Scan(&signature)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read candidate signature: %w", err)
	}
	return signature, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
