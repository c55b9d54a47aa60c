package traits

import "github.com/rferris/geneline/go-engine/internal/reflection"

// #region state

// State is a flat trait name -> value mapping. Later updates overwrite
// earlier ones for the same key; keys not mentioned in an update survive.
type State map[string]string

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// #endregion state

// #region apply

// Flatten collapses an ordered effect list into one mapping. The last
// assignment wins on duplicate keys within the same list.
func Flatten(effects []reflection.TraitEffect) State {
	out := make(State, len(effects))
	for _, e := range effects {
		out[e.Trait] = e.Value
	}
	return out
}

// Apply merges an effect list into a state with overwrite-on-conflict,
// preserving untouched keys. The input state is not modified; the merge
// is all-or-nothing.
func Apply(effects []reflection.TraitEffect, state State) State {
	out := state.Clone()
	for k, v := range Flatten(effects) {
		out[k] = v
	}
	return out
}

// #endregion apply
