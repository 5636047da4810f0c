// Package atom interns short strings — property names, parameter names, and
// type-parameter names — into small comparable handles.
package atom

// ID is an opaque handle into a Table. Equal strings always intern to equal
// IDs within the same Table.
type ID uint32

// None marks the absence of an atom.
const None ID = 0

// Table is an append-only string interner. A Table is owned by exactly one
// typeset.Interner and is not safe for concurrent use; callers that need to
// share an interner across goroutines should go through concurrent.Guarded
// instead of locking a Table directly.
type Table struct {
	byID  []string
	index map[string]ID
}

// New creates an empty table. Index 0 is reserved for None ("").
func New() *Table {
	return &Table{
		byID:  []string{""},
		index: map[string]ID{"": None},
	}
}

// Intern returns the ID for s, allocating a new one if s was never seen.
func (t *Table) Intern(s string) ID {
	if id, ok := t.index[s]; ok {
		return id
	}
	id := ID(len(t.byID))
	cpy := string([]byte(s)) // detach from caller's backing array
	t.byID = append(t.byID, cpy)
	t.index[cpy] = id
	return id
}

// Lookup returns the string for id.
func (t *Table) Lookup(id ID) (string, bool) {
	if int(id) < 0 || int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustLookup panics if id was not produced by this table.
func (t *Table) MustLookup(id ID) string {
	s, ok := t.Lookup(id)
	if !ok {
		panic("atom: invalid ID")
	}
	return s
}

// Len reports how many distinct strings (including the reserved empty one)
// have been interned.
func (t *Table) Len() int {
	return len(t.byID)
}
