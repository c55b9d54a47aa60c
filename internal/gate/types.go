package gate

// #region action

// Action is the gate verdict for a proposed mutant.
type Action string

const (
	ActionCommit Action = "commit"
	ActionReject Action = "reject"
)

// #endregion action

// #region decision

// Decision is the output of the gate evaluation. Vetoed distinguishes a
// structural (validity) rejection from a fitness rejection: vetoed mutants
// must never reach the store or the audit log.
type Decision struct {
	Action      Action
	Reason      string
	Vetoed      bool
	ParentScore int
	ChildScore  int
}

// #endregion decision
