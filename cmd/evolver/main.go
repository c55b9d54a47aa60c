package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rferris/geneline/go-engine/internal/archive"
	"github.com/rferris/geneline/go-engine/internal/journal"
	"github.com/rferris/geneline/go-engine/internal/logging"
	"github.com/rferris/geneline/go-engine/internal/mutation"
	"github.com/rferris/geneline/go-engine/internal/reflection"
	"github.com/rferris/geneline/go-engine/internal/seqfile"
	"github.com/rferris/geneline/go-engine/internal/sequence"
	"github.com/rferris/geneline/go-engine/internal/traits"
)

// #region main
func main() {
	dbPath := envOr("GENELINE_DB", "geneline.db")
	seqPath := envOr("GENELINE_SEQ", "sequences.seq")
	rulesPath := envOr("GENELINE_RULES", "rules.yaml")

	// Open the archive
	arc, err := archive.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open archive: %v", err)
	}
	defer arc.Close()

	// Hydrate the working set: archive first, then the definition file
	working := sequence.NewStore()
	if err := arc.LoadInto(working); err != nil {
		log.Fatalf("failed to hydrate working set: %v", err)
	}
	if working.Len() == 0 {
		f, err := seqfile.Load(seqPath)
		if err != nil {
			log.Fatalf("no archived sequences and no definition file: %v", err)
		}
		for _, e := range f.Sequences {
			if err := working.Put(e.Name, e.Codes); err != nil {
				log.Printf("skipping %s: %v", e.Name, err)
				continue
			}
			if err := arc.SaveSequence(e.Name, e.Codes, ""); err != nil {
				log.Fatalf("failed to archive %s: %v", e.Name, err)
			}
		}
	}

	// Load reflection rules, materializing defaults on first run
	rules, err := reflection.LoadOrInit(rulesPath)
	if err != nil {
		log.Fatalf("failed to load rules: %v", err)
	}

	snapshot, err := traits.NewSnapshotStore(arc.DB())
	if err != nil {
		log.Fatalf("failed to open trait snapshot: %v", err)
	}
	jour, err := journal.NewJournal(arc.DB())
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}

	engine := mutation.NewEngine(working, nil)

	fmt.Println("Geneline evolver ready.")
	fmt.Printf("  DB: %s | Sequences: %d | Rules: %d\n", dbPath, working.Len(), len(rules.Rules))
	fmt.Println("Commands: mutate <name> | list | traits | quit. Anything else is reflected.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		switch {
		case strings.HasPrefix(line, "mutate "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "mutate "))
			runMutate(engine, arc, name)

		case line == "list":
			for _, name := range working.Names() {
				seq, _ := working.Get(name)
				fmt.Printf("  %s: %s\n", name, seq.Join())
			}

		case line == "traits":
			state, err := snapshot.Load()
			if err != nil {
				log.Printf("traits error: %v", err)
				continue
			}
			for k, v := range state {
				fmt.Printf("  %s = %s\n", k, v)
			}

		default:
			out := reflection.Reflect(line, rules)
			fmt.Printf("\n%s\n\n", out.Response)
			if err := snapshot.Merge(out.Effects); err != nil {
				log.Printf("trait merge error: %v", err)
			}
			if err := jour.Save(line, out.Response, out.Effects); err != nil {
				log.Printf("journal error: %v", err)
			}
		}
	}
}

// #endregion main

// #region mutate
func runMutate(engine *mutation.Engine, arc *archive.Store, name string) {
	res, err := engine.MutateWithRetry(name)
	if err != nil {
		log.Printf("mutate error: %v", err)
		return
	}

	switch res.Action {
	case mutation.ActionAccept:
		fmt.Printf("accepted %s (%s): %s [fitness %d >= %d]\n",
			res.Child, res.Kind, res.Codes.Join(), res.ChildScore, res.ParentScore)
		if err := arc.SaveSequence(res.Child, res.Codes, res.Parent); err != nil {
			log.Printf("archive error: %v", err)
		}
		recs := engine.Log()
		if err := logging.LogMutation(arc.DB(), logging.FromRecord(recs[len(recs)-1])); err != nil {
			log.Printf("audit error: %v", err)
		}
	case mutation.ActionRejectInvalid:
		fmt.Printf("rejected (%s): mutant failed validity\n", res.Kind)
	case mutation.ActionRejectFitness:
		fmt.Printf("rejected (%s): fitness %d < %d\n", res.Kind, res.ChildScore, res.ParentScore)
	}
}

// #endregion mutate

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
