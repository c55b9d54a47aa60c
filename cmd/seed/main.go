package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rferris/geneline/go-engine/internal/archive"
	"github.com/rferris/geneline/go-engine/internal/branch"
	"github.com/rferris/geneline/go-engine/internal/reflection"
	"github.com/rferris/geneline/go-engine/internal/replay"
	"github.com/rferris/geneline/go-engine/internal/seqfile"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #region main

// seed writes a complete starter workspace: default reflection rules,
// a sample sequence definition file, a demo replay fixture, and a
// database pre-populated with the sample sequences and branch rows.
func main() {
	dir := envOr("GENELINE_DIR", ".")
	dbPath := envOr("GENELINE_DB", filepath.Join(dir, "geneline.db"))

	rulesPath := filepath.Join(dir, "rules.yaml")
	if err := reflection.Save(reflection.Default(), rulesPath); err != nil {
		log.Fatalf("failed to write rules: %v", err)
	}
	fmt.Printf("wrote %s\n", rulesPath)

	sf := sampleFile()
	seqPath := filepath.Join(dir, "sequences.seq")
	if err := sf.Save(seqPath); err != nil {
		log.Fatalf("failed to write sequence file: %v", err)
	}
	fmt.Printf("wrote %s\n", seqPath)

	fixturePath := filepath.Join(dir, "fixture.json")
	if err := writeFixture(fixturePath); err != nil {
		log.Fatalf("failed to write fixture: %v", err)
	}
	fmt.Printf("wrote %s\n", fixturePath)

	if err := bootstrapDB(dbPath, sf); err != nil {
		log.Fatalf("failed to bootstrap database: %v", err)
	}
	fmt.Printf("seeded %s\n", dbPath)
}

// #endregion main

// #region samples
func sampleFile() *seqfile.File {
	return &seqfile.File{
		Meta: map[string]string{"author": "seed", "tone": "patient"},
		Sequences: []seqfile.Entry{
			{Name: "seq1", Codes: sequence.Parse("CGA-AG-GCTA")},
			{Name: "seq2", Codes: sequence.Parse("CGA-TAC-AG-GCTA")},
			{Name: "seq3", Codes: sequence.Parse("AG-GTCA-GCTA")},
		},
		Branches: []seqfile.BranchDirective{
			{Code: "GC", WhenPresent: "seq2", Otherwise: "seq1"},
			{Code: "TAC", WhenPresent: "seq3", Otherwise: "seq1"},
		},
	}
}

func writeFixture(path string) error {
	f := replay.Fixture{
		Description: "starter fixture: two accepting edits and one unknown parent",
		Seed:        7,
		Sequences: []replay.FixtureSequence{
			{Name: "seq1", Codes: []string{"CGA", "AG", "GCTA"}},
		},
		Steps: []replay.FixtureStep{
			{Name: "seq1", Kind: "duplicate"},
			{Name: "seq1", Kind: "duplicate"},
			{Name: "ghost", Kind: "random"},
		},
		Expected: []string{"accept", "accept", "not_found"},
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// #endregion samples

// #region bootstrap
func bootstrapDB(path string, sf *seqfile.File) error {
	arc, err := archive.NewStore(path)
	if err != nil {
		return err
	}
	defer arc.Close()

	for _, e := range sf.Sequences {
		if err := arc.SaveSequence(e.Name, e.Codes, ""); err != nil {
			return err
		}
	}

	branches, err := branch.NewBranchStore(arc.DB())
	if err != nil {
		return err
	}
	for _, d := range sf.Branches {
		b := branch.Branch{Code: d.Code, WhenPresent: d.WhenPresent, Otherwise: d.Otherwise}
		if err := branches.Put(b); err != nil {
			return err
		}
	}
	return nil
}

// #endregion bootstrap

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
