package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rferris/geneline/go-engine/internal/archive"
	"github.com/rferris/geneline/go-engine/internal/branch"
	"github.com/rferris/geneline/go-engine/internal/logging"
	"github.com/rferris/geneline/go-engine/internal/traits"
)

// #region main
func main() {
	dbPath := flag.String("db", "geneline.db", "path to the geneline database")
	limit := flag.Int("limit", 20, "max audit entries to show")
	flag.Parse()

	arc, err := archive.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open archive: %v", err)
	}
	defer arc.Close()

	names, err := arc.ListSequences()
	if err != nil {
		log.Fatalf("failed to list sequences: %v", err)
	}
	fmt.Printf("sequences (%d):\n", len(names))
	for _, name := range names {
		seq, err := arc.GetSequence(name)
		if err != nil {
			log.Printf("  %s: %v", name, err)
			continue
		}
		fmt.Printf("  %s: %s\n", name, seq.Join())
	}

	entries, err := logging.ListMutations(arc.DB(), *limit)
	if err != nil {
		log.Fatalf("failed to list mutations: %v", err)
	}
	fmt.Printf("\nmutation log (%d most recent):\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  %s  %s -> %s  kind=%s fitness=%d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Parent, e.Child, e.Kind, e.Fitness, e.Codes)
	}

	snapshot, err := traits.NewSnapshotStore(arc.DB())
	if err != nil {
		log.Fatalf("failed to open trait snapshot: %v", err)
	}
	state, err := snapshot.Load()
	if err != nil {
		log.Fatalf("failed to load traits: %v", err)
	}
	fmt.Printf("\ntraits (%d):\n", len(state))
	for k, v := range state {
		fmt.Printf("  %s = %s\n", k, v)
	}

	branches, err := branch.NewBranchStore(arc.DB())
	if err != nil {
		log.Fatalf("failed to open branches: %v", err)
	}
	all, err := branches.All()
	if err != nil {
		log.Fatalf("failed to list branches: %v", err)
	}
	fmt.Printf("\nbranches (%d):\n", len(all))
	for _, b := range all {
		fmt.Printf("  %s -> %s | %s\n", b.Code, b.WhenPresent, b.Otherwise)
	}
}

// #endregion main
