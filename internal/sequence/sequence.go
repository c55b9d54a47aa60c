package sequence

import (
	"strings"

	"github.com/rferris/geneline/go-engine/internal/registry"
)

// #region sequence

// Sequence is a named program: an ordered, non-empty list of instruction
// codes. Position is semantically meaningful.
type Sequence []registry.Code

// Valid reports whether the sequence is well-formed: non-empty, every code
// registered, and the commit code present at least once.
func (s Sequence) Valid() bool {
	if len(s) == 0 {
		return false
	}
	committed := false
	for _, c := range s {
		if !registry.IsRegistered(c) {
			return false
		}
		if c == registry.CodeCommit {
			committed = true
		}
	}
	return committed
}

// Contains reports whether the code occurs anywhere in the sequence.
func (s Sequence) Contains(c registry.Code) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Join renders the hyphen-joined textual form, e.g. "CGA-AG-GCTA".
// This is the form the reflection engine matches patterns against.
func (s Sequence) Join() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = string(c)
	}
	return strings.Join(parts, "-")
}

// Parse splits a hyphen-joined textual form back into a Sequence.
// No validity check is applied; callers validate via Valid.
func Parse(text string) Sequence {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "-")
	out := make(Sequence, len(parts))
	for i, p := range parts {
		out[i] = registry.Code(p)
	}
	return out
}

// #endregion sequence
