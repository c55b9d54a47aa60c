package branch

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS branches (
	code         TEXT PRIMARY KEY,
	when_present TEXT NOT NULL,
	otherwise    TEXT NOT NULL,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region types

// Branch is one conditional fork directive: when the keyed code is present
// in a sequence, control flows to WhenPresent, otherwise to Otherwise.
type Branch struct {
	Code        registry.Code
	WhenPresent string
	Otherwise   string
}

// Resolve picks the fork target for a given sequence.
func (b Branch) Resolve(seq sequence.Sequence) string {
	if seq.Contains(b.Code) {
		return b.WhenPresent
	}
	return b.Otherwise
}

// #endregion types

// #region store

// BranchStore manages the branches table.
type BranchStore struct {
	db *sql.DB
}

// NewBranchStore creates the branches table if needed and returns a store.
func NewBranchStore(db *sql.DB) (*BranchStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("branch schema: %w", err)
	}
	return &BranchStore{db: db}, nil
}

// Put upserts a branch directive keyed on its code.
func (s *BranchStore) Put(b Branch) error {
	_, err := s.db.Exec(
		`INSERT INTO branches (code, when_present, otherwise, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET when_present = excluded.when_present, otherwise = excluded.otherwise`,
		string(b.Code), b.WhenPresent, b.Otherwise, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put branch %s: %w", b.Code, err)
	}
	return nil
}

// Get retrieves the branch keyed on a code. The bool is false when absent.
func (s *BranchStore) Get(code registry.Code) (Branch, bool, error) {
	var b Branch
	var codeStr string
	err := s.db.QueryRow(
		`SELECT code, when_present, otherwise FROM branches WHERE code = ?`, string(code),
	).Scan(&codeStr, &b.WhenPresent, &b.Otherwise)
	if err == sql.ErrNoRows {
		return Branch{}, false, nil
	}
	if err != nil {
		return Branch{}, false, fmt.Errorf("get branch %s: %w", code, err)
	}
	b.Code = registry.Code(codeStr)
	return b, true, nil
}

// All returns every branch directive in insertion order.
func (s *BranchStore) All() ([]Branch, error) {
	rows, err := s.db.Query(`SELECT code, when_present, otherwise FROM branches ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var out []Branch
	for rows.Next() {
		var b Branch
		var codeStr string
		if err := rows.Scan(&codeStr, &b.WhenPresent, &b.Otherwise); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		b.Code = registry.Code(codeStr)
		out = append(out, b)
	}
	return out, rows.Err()
}

// #endregion store
