package gate

import (
	"fmt"

	"github.com/rferris/geneline/go-engine/internal/fitness"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #region gate

// Scorer maps a sequence to its fitness. Injected so tests can force
// score relationships without crafting specific sequences.
type Scorer func(sequence.Sequence) int

// Gate decides whether a proposed mutant replaces nothing or joins the
// store as a new variant.
type Gate struct {
	score Scorer
}

// NewGate creates a gate. A nil scorer falls back to fitness.Score.
func NewGate(score Scorer) *Gate {
	if score == nil {
		score = fitness.Score
	}
	return &Gate{score: score}
}

// Evaluate checks the structural veto first, then compares fitness.
// A mutant is kept iff its fitness is greater than or equal to the
// parent's: ties favor the mutation (exploration bias).
func (g *Gate) Evaluate(parent, child sequence.Sequence) Decision {
	if !child.Valid() {
		return Decision{
			Action: ActionReject,
			Reason: fmt.Sprintf("hard veto: mutant %q fails validity", child.Join()),
			Vetoed: true,
		}
	}

	parentScore := g.score(parent)
	childScore := g.score(child)

	if childScore < parentScore {
		return Decision{
			Action:      ActionReject,
			Reason:      fmt.Sprintf("fitness %d below parent %d", childScore, parentScore),
			ParentScore: parentScore,
			ChildScore:  childScore,
		}
	}

	return Decision{
		Action:      ActionCommit,
		Reason:      fmt.Sprintf("fitness %d >= parent %d", childScore, parentScore),
		ParentScore: parentScore,
		ChildScore:  childScore,
	}
}

// #endregion gate
