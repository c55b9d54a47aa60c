package mutation

// #region imports
import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rferris/geneline/go-engine/internal/gate"
	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region rand

// Rand is the randomness source for edit selection. *rand.Rand satisfies
// it; tests inject a scripted source.
type Rand interface {
	Intn(n int) int
}

// #endregion rand

// #region engine

// Engine applies structural edits to stored sequences with fitness-gated
// acceptance. The audit log is owned by the engine instance, not ambient
// state, so independent engines stay isolated.
type Engine struct {
	store *sequence.Store
	gate  *gate.Gate
	rng   Rand
	log   []Record
}

// NewEngine creates an engine over a store. A nil rng falls back to a
// time-seeded source.
func NewEngine(store *sequence.Store, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		store: store,
		gate:  gate.NewGate(nil),
		rng:   rng,
	}
}

// Log returns a copy of the append-only audit log.
func (e *Engine) Log() []Record {
	out := make([]Record, len(e.log))
	copy(out, e.log)
	return out
}

// #endregion engine

// #region mutate

// Mutate copies the named sequence, applies one structural edit, and
// accepts the mutant iff it passes validity and scores at least as high
// as its parent. On acceptance the mutant is registered under a fresh
// variant name and an audit record is appended. The parent entry is never
// modified in place; rejections leave the store and log untouched.
func (e *Engine) Mutate(name string, kind Kind) (Result, error) {
	parent, ok := e.store.Get(name)
	if !ok {
		return Result{}, fmt.Errorf("mutate %s: %w", name, ErrNotFound)
	}

	resolved := kind
	if resolved == KindRandom {
		resolved = structuralKinds[e.rng.Intn(len(structuralKinds))]
	}

	mutant := e.applyEdit(parent.Clone(), resolved)

	decision := e.gate.Evaluate(parent, mutant)
	if decision.Vetoed {
		return Result{
			Action: ActionRejectInvalid,
			Parent: name,
			Kind:   resolved,
			Codes:  mutant,
			Reason: decision.Reason,
		}, nil
	}
	if decision.Action == gate.ActionReject {
		return Result{
			Action:      ActionRejectFitness,
			Parent:      name,
			Kind:        resolved,
			Codes:       mutant,
			ParentScore: decision.ParentScore,
			ChildScore:  decision.ChildScore,
			Reason:      decision.Reason,
		}, nil
	}

	child := e.store.NextVariantName(name)
	if err := e.store.Put(child, mutant); err != nil {
		return Result{}, fmt.Errorf("mutate %s: register %s: %w", name, child, err)
	}

	e.log = append(e.log, Record{
		ID:        uuid.New().String(),
		Parent:    name,
		Child:     child,
		Kind:      resolved,
		Codes:     mutant.Clone(),
		Fitness:   decision.ChildScore,
		CreatedAt: time.Now().UTC(),
	})

	return Result{
		Action:      ActionAccept,
		Parent:      name,
		Child:       child,
		Kind:        resolved,
		Codes:       mutant,
		ParentScore: decision.ParentScore,
		ChildScore:  decision.ChildScore,
		Reason:      decision.Reason,
	}, nil
}

// #endregion mutate

// #region edits

// applyEdit applies one structural edit in place on a copy. Edits needing
// length > 1 (swap, delete) silently no-op on single-code sequences.
func (e *Engine) applyEdit(seq sequence.Sequence, kind Kind) sequence.Sequence {
	switch kind {
	case KindSwap:
		if len(seq) > 1 {
			i := e.rng.Intn(len(seq) - 1)
			seq[i], seq[i+1] = seq[i+1], seq[i]
		}
	case KindInsert:
		all := registry.All()
		code := all[e.rng.Intn(len(all))]
		pos := e.rng.Intn(len(seq) + 1)
		seq = append(seq, "")
		copy(seq[pos+1:], seq[pos:])
		seq[pos] = code
	case KindDelete:
		if len(seq) > 1 {
			i := e.rng.Intn(len(seq))
			seq = append(seq[:i], seq[i+1:]...)
		}
	case KindDuplicate:
		i := e.rng.Intn(len(seq))
		code := seq[i]
		seq = append(seq, "")
		copy(seq[i+1:], seq[i:])
		seq[i+1] = code
	}
	return seq
}

// #endregion edits
