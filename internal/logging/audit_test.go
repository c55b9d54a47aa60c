package logging

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rferris/geneline/go-engine/internal/archive"
	"github.com/rferris/geneline/go-engine/internal/mutation"
	"github.com/rferris/geneline/go-engine/internal/sequence"
	_ "modernc.org/sqlite"
)

func auditDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := archive.NewStoreWithDB(db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func TestLogAndListMutations(t *testing.T) {
	db := auditDB(t)

	entry := AuditEntry{
		RecordID:  "rec-1",
		Parent:    "seq1",
		Child:     "seq1_mutated_v1",
		Kind:      "duplicate",
		Codes:     "CGA-AG-AG-GCTA",
		Fitness:   4,
		CreatedAt: time.Now().UTC(),
	}
	if err := LogMutation(db, entry); err != nil {
		t.Fatalf("LogMutation: %v", err)
	}

	entries, err := ListMutations(db, 10)
	if err != nil {
		t.Fatalf("ListMutations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.Parent != "seq1" || got.Child != "seq1_mutated_v1" || got.Kind != "duplicate" {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.Codes != "CGA-AG-AG-GCTA" || got.Fitness != 4 {
		t.Fatalf("entry not self-describing: %+v", got)
	}
}

func TestListMutationsNewestFirst(t *testing.T) {
	db := auditDB(t)

	LogMutation(db, AuditEntry{RecordID: "rec-1", Parent: "a", Child: "a_mutated_v1", Kind: "swap", Codes: "GCTA"})
	LogMutation(db, AuditEntry{RecordID: "rec-2", Parent: "a", Child: "a_mutated_v2", Kind: "insert", Codes: "AG-GCTA"})

	entries, err := ListMutations(db, 10)
	if err != nil {
		t.Fatalf("ListMutations: %v", err)
	}
	if entries[0].RecordID != "rec-2" {
		t.Fatalf("expected newest first, got %s", entries[0].RecordID)
	}
}

func TestLogMutationDefaultsTimestamp(t *testing.T) {
	db := auditDB(t)

	if err := LogMutation(db, AuditEntry{RecordID: "rec-1", Parent: "a", Child: "b", Kind: "swap", Codes: "GCTA"}); err != nil {
		t.Fatalf("LogMutation: %v", err)
	}
	entries, _ := ListMutations(db, 1)
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("zero timestamp must be defaulted")
	}
}

func TestFromRecord(t *testing.T) {
	rec := mutation.Record{
		ID:        "rec-9",
		Parent:    "seq1",
		Child:     "seq1_mutated_v1",
		Kind:      mutation.KindInsert,
		Codes:     sequence.Parse("GCTA-AG-GCTA"),
		Fitness:   3,
		CreatedAt: time.Now().UTC(),
	}
	e := FromRecord(rec)
	if e.RecordID != "rec-9" || e.Kind != "insert" || e.Codes != "GCTA-AG-GCTA" || e.Fitness != 3 {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestLogMutationMissingTable(t *testing.T) {
	db := auditDB(t)
	db.Exec("DROP TABLE mutation_log")

	if err := LogMutation(db, AuditEntry{RecordID: "r", Parent: "a", Child: "b", Kind: "swap", Codes: "GCTA"}); err == nil {
		t.Fatal("expected error when mutation_log table is missing")
	}
}
