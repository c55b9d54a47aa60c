package traits

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rferris/geneline/go-engine/internal/reflection"
)

// #endregion

// #region schema

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS traits (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// #endregion schema

// #region store

// SnapshotStore persists the trait snapshot as flat key/value rows.
// Partial updates merge rather than replace.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates the traits table if needed and returns a store.
func NewSnapshotStore(db *sql.DB) (*SnapshotStore, error) {
	if _, err := db.Exec(snapshotSchema); err != nil {
		return nil, fmt.Errorf("traits schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Merge upserts only the keys mentioned in the effect list, inside one
// transaction so the snapshot is never partially updated.
func (s *SnapshotStore) Merge(effects []reflection.TraitEffect) error {
	if len(effects) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, value := range Flatten(effects) {
		_, err := tx.Exec(
			`INSERT INTO traits (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, now,
		)
		if err != nil {
			return fmt.Errorf("merge trait %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Load reads the full trait snapshot.
func (s *SnapshotStore) Load() (State, error) {
	rows, err := s.db.Query(`SELECT key, value FROM traits`)
	if err != nil {
		return nil, fmt.Errorf("load traits: %w", err)
	}
	defer rows.Close()

	state := make(State)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan trait: %w", err)
		}
		state[k] = v
	}
	return state, rows.Err()
}

// #endregion store
