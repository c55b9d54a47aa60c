package mutation

// #region imports
import (
	"errors"
	"time"

	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region kind

// Kind identifies one structural edit.
type Kind string

const (
	KindSwap      Kind = "swap"      // swap adjacent codes at a random position
	KindInsert    Kind = "insert"    // insert a random registered code at a random position
	KindDelete    Kind = "delete"    // delete the code at a random position
	KindDuplicate Kind = "duplicate" // duplicate the code at a random position
	KindRandom    Kind = "random"    // pick one of the four structural edits
)

// structuralKinds fixes the draw order for KindRandom and retry selection.
var structuralKinds = []Kind{KindSwap, KindInsert, KindDelete, KindDuplicate}

// #endregion kind

// #region errors

// ErrNotFound reports a mutation request against an absent sequence name.
// The store is unchanged in this case.
var ErrNotFound = errors.New("sequence not found")

// #endregion errors

// #region action

// Action is the outcome category of one mutation attempt.
type Action string

const (
	ActionAccept        Action = "accept"
	ActionRejectInvalid Action = "reject_invalid"
	ActionRejectFitness Action = "reject_fitness"
)

// #endregion action

// #region result

// Result reports one mutation attempt. Both fitness scores are included on
// rejection so callers can diagnose the comparison.
type Result struct {
	Action      Action
	Parent      string
	Child       string // set only on accept
	Kind        Kind   // the resolved structural edit (never "random")
	Codes       sequence.Sequence
	ParentScore int
	ChildScore  int
	Reason      string
}

// #endregion result

// #region record

// Record is one append-only audit entry for an accepted mutation.
// Fully self-describing: parent, child, kind, timestamp, resulting codes,
// and the fitness of the accepted variant.
type Record struct {
	ID        string
	Parent    string
	Child     string
	Kind      Kind
	Codes     sequence.Sequence
	Fitness   int
	CreatedAt time.Time
}

// #endregion record
