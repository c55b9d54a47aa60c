package branch

import (
	"database/sql"
	"testing"

	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
	_ "modernc.org/sqlite"
)

func tempBranches(t *testing.T) *BranchStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := NewBranchStore(db)
	if err != nil {
		t.Fatalf("NewBranchStore: %v", err)
	}
	return s
}

func TestPutAndGet(t *testing.T) {
	s := tempBranches(t)
	b := Branch{Code: registry.CodeBranch, WhenPresent: "seq1", Otherwise: "seq2"}

	if err := s.Put(b); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(registry.CodeBranch)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected branch present")
	}
	if got.WhenPresent != "seq1" || got.Otherwise != "seq2" {
		t.Fatalf("unexpected branch %+v", got)
	}
}

func TestGetAbsent(t *testing.T) {
	s := tempBranches(t)
	_, ok, err := s.Get(registry.CodeInvert)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected absence, not an error")
	}
}

func TestResolve(t *testing.T) {
	b := Branch{Code: registry.CodeBranch, WhenPresent: "fork_a", Otherwise: "fork_b"}

	with := sequence.Parse("CGA-GC-GCTA")
	without := sequence.Parse("CGA-AG-GCTA")

	if got := b.Resolve(with); got != "fork_a" {
		t.Fatalf("Resolve(with) = %s, want fork_a", got)
	}
	if got := b.Resolve(without); got != "fork_b" {
		t.Fatalf("Resolve(without) = %s, want fork_b", got)
	}
}

func TestPutUpsert(t *testing.T) {
	s := tempBranches(t)
	s.Put(Branch{Code: registry.CodeBranch, WhenPresent: "a", Otherwise: "b"})
	s.Put(Branch{Code: registry.CodeBranch, WhenPresent: "c", Otherwise: "d"})

	got, _, _ := s.Get(registry.CodeBranch)
	if got.WhenPresent != "c" || got.Otherwise != "d" {
		t.Fatalf("upsert did not replace: %+v", got)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected single row after upsert, got %d", len(all))
	}
}

func TestAllOrder(t *testing.T) {
	s := tempBranches(t)
	s.Put(Branch{Code: registry.CodeInvert, WhenPresent: "x", Otherwise: "y"})
	s.Put(Branch{Code: registry.CodeBranch, WhenPresent: "a", Otherwise: "b"})

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 || all[0].Code != registry.CodeInvert {
		t.Fatalf("unexpected order %+v", all)
	}
}
