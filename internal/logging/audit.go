package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-mutation

// LogMutation appends an audit entry to the mutation_log table. The log
// is append-only; rows are never rewritten or compacted.
func LogMutation(db *sql.DB, entry AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO mutation_log (record_id, parent, child, kind, codes, fitness, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.RecordID,
		entry.Parent,
		entry.Child,
		entry.Kind,
		entry.Codes,
		entry.Fitness,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log mutation: %w", err)
	}
	return nil
}

// #endregion log-mutation

// #region list-mutations

// ListMutations returns the most recent audit entries, newest first.
func ListMutations(db *sql.DB, limit int) ([]AuditEntry, error) {
	rows, err := db.Query(
		`SELECT record_id, parent, child, kind, codes, fitness, created_at
		 FROM mutation_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list mutations: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var createdStr string
		if err := rows.Scan(&e.RecordID, &e.Parent, &e.Child, &e.Kind, &e.Codes, &e.Fitness, &createdStr); err != nil {
			return nil, fmt.Errorf("scan mutation row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-mutations
