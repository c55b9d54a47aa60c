package fitness

import (
	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #region weights

const (
	commitBonus   = 2  // commit code appears anywhere
	executeBonus  = 1  // execute code appears at least once
	openerBonus   = 1  // first code is the fuzzy-evaluate opener
	lengthPenalty = -1 // length exceeds maxUnpenalizedLength
)

// maxUnpenalizedLength is the longest sequence that avoids the growth penalty.
const maxUnpenalizedLength = 5

// #endregion weights

// #region score

// Score computes the deterministic fitness of a sequence. Pure, no side
// effects. Ties between parent and mutant are resolved by the acceptance
// gate, not here.
func Score(seq sequence.Sequence) int {
	score := 0
	if seq.Contains(registry.CodeCommit) {
		score += commitBonus
	}
	if seq.Contains(registry.CodeExecute) {
		score += executeBonus
	}
	if len(seq) > 0 && seq[0] == registry.CodeFuzzyEval {
		score += openerBonus
	}
	if len(seq) > maxUnpenalizedLength {
		score += lengthPenalty
	}
	return score
}

// #endregion score
