package sequence

import "fmt"

// #region store

// Store is the in-memory working set of named sequences. Names are
// globally unique; every stored sequence satisfies Valid.
type Store struct {
	seqs  map[string]Sequence
	names []string // insertion order, for deterministic listing
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{seqs: make(map[string]Sequence)}
}

// Put inserts a sequence under a unique name. Invalid sequences and
// duplicate names are rejected; the store is never left partially updated.
func (st *Store) Put(name string, seq Sequence) error {
	if name == "" {
		return fmt.Errorf("put sequence: empty name")
	}
	if !seq.Valid() {
		return fmt.Errorf("put sequence %s: invalid sequence %q", name, seq.Join())
	}
	if _, exists := st.seqs[name]; exists {
		return fmt.Errorf("put sequence %s: name already in use", name)
	}
	st.seqs[name] = seq.Clone()
	st.names = append(st.names, name)
	return nil
}

// Get returns a copy of the named sequence. The second return is false
// when the name is absent.
func (st *Store) Get(name string) (Sequence, bool) {
	seq, ok := st.seqs[name]
	if !ok {
		return nil, false
	}
	return seq.Clone(), true
}

// Names returns all stored names in insertion order.
func (st *Store) Names() []string {
	out := make([]string, len(st.names))
	copy(out, st.names)
	return out
}

// Len returns the number of stored sequences.
func (st *Store) Len() int {
	return len(st.seqs)
}

// #endregion store

// #region variant-naming

// NextVariantName returns the first unused child name for a base sequence,
// of the form <base>_mutated_v<k> with k starting at 1 and incrementing
// past any existing collision.
func (st *Store) NextVariantName(base string) string {
	for k := 1; ; k++ {
		name := fmt.Sprintf("%s_mutated_v%d", base, k)
		if _, exists := st.seqs[name]; !exists {
			return name
		}
	}
}

// #endregion variant-naming
