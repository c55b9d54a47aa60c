package archive

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rferris/geneline/go-engine/internal/sequence"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sequences (
	name       TEXT PRIMARY KEY,
	codes      TEXT NOT NULL,
	parent     TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS mutation_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	record_id  TEXT NOT NULL,
	parent     TEXT NOT NULL,
	child      TEXT NOT NULL,
	kind       TEXT NOT NULL,
	codes      TEXT NOT NULL,
	fitness    INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists named sequences and the append-only mutation audit log
// in SQLite. The working set stays in memory; the archive is written
// wholesale per accepted mutation.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection. Used by tests that need
// direct access to the underlying tables.
func NewStoreWithDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by sibling packages
// (logging, traits, branch, journal share one database).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region sequences

// SaveSequence upserts one named sequence. parent may be empty for
// sequences loaded from a definition file rather than bred by mutation.
func (s *Store) SaveSequence(name string, seq sequence.Sequence, parent string) error {
	if !seq.Valid() {
		return fmt.Errorf("save sequence %s: invalid sequence %q", name, seq.Join())
	}

	var parentPtr interface{}
	if parent != "" {
		parentPtr = parent
	}

	_, err := s.db.Exec(
		`INSERT INTO sequences (name, codes, parent, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET codes = excluded.codes, parent = excluded.parent`,
		name, seq.Join(), parentPtr, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save sequence %s: %w", name, err)
	}
	return nil
}

// GetSequence retrieves one archived sequence by name.
func (s *Store) GetSequence(name string) (sequence.Sequence, error) {
	var codes string
	err := s.db.QueryRow(`SELECT codes FROM sequences WHERE name = ?`, name).Scan(&codes)
	if err != nil {
		return nil, fmt.Errorf("get sequence %s: %w", name, err)
	}
	return sequence.Parse(codes), nil
}

// ListSequences returns all archived names in insertion (rowid) order.
func (s *Store) ListSequences() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM sequences ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// LoadInto hydrates an in-memory working store from the archive,
// preserving exact code order per sequence.
func (s *Store) LoadInto(dst *sequence.Store) error {
	rows, err := s.db.Query(`SELECT name, codes FROM sequences ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("load sequences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, codes string
		if err := rows.Scan(&name, &codes); err != nil {
			return fmt.Errorf("scan sequence: %w", err)
		}
		if err := dst.Put(name, sequence.Parse(codes)); err != nil {
			return fmt.Errorf("hydrate %s: %w", name, err)
		}
	}
	return rows.Err()
}

// #endregion sequences
