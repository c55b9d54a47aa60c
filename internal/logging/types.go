package logging

import (
	"time"

	"github.com/rferris/geneline/go-engine/internal/mutation"
)

// #region audit-entry

// AuditEntry is a single row in the mutation_log table. Each row is fully
// self-describing: parent, child, kind, timestamp, resulting codes, and
// fitness of the accepted variant.
type AuditEntry struct {
	RecordID  string
	Parent    string
	Child     string
	Kind      string
	Codes     string
	Fitness   int
	CreatedAt time.Time
}

// FromRecord converts an in-memory audit record to its persisted form.
func FromRecord(rec mutation.Record) AuditEntry {
	return AuditEntry{
		RecordID:  rec.ID,
		Parent:    rec.Parent,
		Child:     rec.Child,
		Kind:      string(rec.Kind),
		Codes:     rec.Codes.Join(),
		Fitness:   rec.Fitness,
		CreatedAt: rec.CreatedAt,
	}
}

// #endregion audit-entry
