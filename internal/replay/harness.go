package replay

// #region imports
import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rferris/geneline/go-engine/internal/mutation"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region types

// StepResult captures the outcome of replaying one scripted mutation step.
type StepResult struct {
	Name        string
	Kind        mutation.Kind
	Action      string // "accept" | "reject_invalid" | "reject_fitness" | "not_found"
	Reason      string
	Child       string
	ParentScore int
	ChildScore  int
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Steps          int
	Accepts        int
	InvalidRejects int
	FitnessRejects int
	NotFound       int
}

// Outcome bundles everything returned by Replay.
type Outcome struct {
	Results []StepResult
	Summary Summary
	Store   *sequence.Store
	Log     []mutation.Record
}

// #endregion types

// #region replay

// Replay runs the scripted steps through a fresh engine seeded from the
// fixture. Operates entirely in memory; the same fixture always produces
// the same outcome.
func Replay(f *Fixture) (Outcome, error) {
	store := sequence.NewStore()
	for _, fs := range f.Sequences {
		if err := store.Put(fs.Name, fs.ToSequence()); err != nil {
			return Outcome{}, fmt.Errorf("fixture sequence %s: %w", fs.Name, err)
		}
	}

	engine := mutation.NewEngine(store, rand.New(rand.NewSource(f.Seed)))
	results := make([]StepResult, 0, len(f.Steps))
	summary := Summary{Steps: len(f.Steps)}

	for _, step := range f.Steps {
		res, err := engine.Mutate(step.Name, step.ToKind())
		if errors.Is(err, mutation.ErrNotFound) {
			summary.NotFound++
			results = append(results, StepResult{
				Name:   step.Name,
				Kind:   step.ToKind(),
				Action: "not_found",
				Reason: err.Error(),
			})
			continue
		}
		if err != nil {
			return Outcome{}, fmt.Errorf("replay step %s: %w", step.Name, err)
		}

		switch res.Action {
		case mutation.ActionAccept:
			summary.Accepts++
		case mutation.ActionRejectInvalid:
			summary.InvalidRejects++
		case mutation.ActionRejectFitness:
			summary.FitnessRejects++
		}

		results = append(results, StepResult{
			Name:        step.Name,
			Kind:        res.Kind,
			Action:      string(res.Action),
			Reason:      res.Reason,
			Child:       res.Child,
			ParentScore: res.ParentScore,
			ChildScore:  res.ChildScore,
		})
	}

	return Outcome{
		Results: results,
		Summary: summary,
		Store:   store,
		Log:     engine.Log(),
	}, nil
}

// Verify compares replay results against the fixture's expected actions.
// Returns one message per mismatch; empty means the run matched.
func Verify(f *Fixture, results []StepResult) []string {
	var mismatches []string
	for i, want := range f.Expected {
		if i >= len(results) {
			mismatches = append(mismatches, fmt.Sprintf("step %d: expected %s, no result", i, want))
			continue
		}
		if results[i].Action != want {
			mismatches = append(mismatches, fmt.Sprintf(
				"step %d: expected %s, got %s (%s)", i, want, results[i].Action, results[i].Reason))
		}
	}
	return mismatches
}

// #endregion replay
