package registry

// #region code

// Code is one instruction token from the fixed symbolic alphabet.
// The set is closed: new codes are not registered at run time.
type Code string

const (
	CodeExecute   Code = "AG"   // execute the current intent
	CodeFuzzyEval Code = "CGA"  // fuzzy-evaluate, soft pattern match
	CodeCommit    Code = "GCTA" // commit and seal the sequence
	CodeBranch    Code = "GC"   // probe for a conditional fork
	CodeInvert    Code = "GTCA" // invert reading direction
	CodeRecall    Code = "TAC"  // recall a stored sequence
	CodeObserve   Code = "ACT"  // observe without acting
	CodeSelf      Code = "CT"   // reference the running sequence itself
)

// #endregion code

// #region descriptions

var descriptions = map[Code]string{
	CodeExecute:   "execute the current intent",
	CodeFuzzyEval: "fuzzy-evaluate: soft pattern match against context",
	CodeCommit:    "commit and seal the sequence",
	CodeBranch:    "probe for a conditional fork",
	CodeInvert:    "invert reading direction",
	CodeRecall:    "recall a stored sequence",
	CodeObserve:   "observe without acting",
	CodeSelf:      "reference the running sequence itself",
}

// order fixes the iteration order for All.
var order = []Code{
	CodeExecute,
	CodeFuzzyEval,
	CodeCommit,
	CodeBranch,
	CodeInvert,
	CodeRecall,
	CodeObserve,
	CodeSelf,
}

// #endregion descriptions

// #region lookup

// Describe returns the human-readable meaning of a code.
// The second return is false for unregistered codes.
func Describe(c Code) (string, bool) {
	d, ok := descriptions[c]
	return d, ok
}

// IsRegistered reports whether a code belongs to the instruction set.
func IsRegistered(c Code) bool {
	_, ok := descriptions[c]
	return ok
}

// All returns every registered code in declaration order.
func All() []Code {
	out := make([]Code, len(order))
	copy(out, order)
	return out
}

// #endregion lookup
