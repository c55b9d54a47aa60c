package journal

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rferris/geneline/go-engine/internal/reflection"
)

// #endregion imports

// #region types

// Entry holds one reflection outcome: the input sequence text, the
// response, and the trait effects that were applied.
type Entry struct {
	ID        int64
	Input     string
	Response  string
	Effects   []reflection.TraitEffect
	CreatedAt time.Time
}

// #endregion types

// #region store

// Journal persists reflection outcomes in SQLite.
type Journal struct {
	db *sql.DB
}

// NewJournal creates the reflection_log table if needed and returns a journal.
func NewJournal(db *sql.DB) (*Journal, error) {
	j := &Journal{db: db}
	if err := j.init(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Journal) init() error {
	_, err := j.db.Exec(`CREATE TABLE IF NOT EXISTS reflection_log (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		input        TEXT NOT NULL,
		response     TEXT NOT NULL,
		effects_json TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("journal schema: %w", err)
	}
	return nil
}

// Save stores one reflection outcome.
func (j *Journal) Save(input, response string, effects []reflection.TraitEffect) error {
	pairs := make([]map[string]string, len(effects))
	for i, e := range effects {
		pairs[i] = map[string]string{e.Trait: e.Value}
	}
	effectsJSON, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("marshal effects: %w", err)
	}

	_, err = j.db.Exec(
		`INSERT INTO reflection_log (input, response, effects_json, created_at) VALUES (?, ?, ?, ?)`,
		input, response, string(effectsJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save reflection: %w", err)
	}
	return nil
}

// Latest returns the most recent entry, or nil if none exists.
func (j *Journal) Latest() (*Entry, error) {
	entries, err := j.Recent(1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, input, response, effects_json, created_at
		 FROM reflection_log ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("recent reflections: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var effectsJSON, createdStr string
		if err := rows.Scan(&e.ID, &e.Input, &e.Response, &effectsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan reflection: %w", err)
		}
		var pairs []map[string]string
		if err := json.Unmarshal([]byte(effectsJSON), &pairs); err != nil {
			return nil, fmt.Errorf("unmarshal effects: %w", err)
		}
		for _, p := range pairs {
			for k, v := range p {
				e.Effects = append(e.Effects, reflection.TraitEffect{Trait: k, Value: v})
			}
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion store
