package gpt

// Table is a parsed GPT table listing.
type Table struct {
	// Entries holds one entry per input line, in input order
	Entries []Entry
}

// Entry is a single partition line of the table.
type Entry struct {
	// Name is the partition name, possibly with an "_a"/"_b" slot suffix
	Name string

	// Offset is the hex literal following "Offset", as written
	Offset string

	// Length is the hex literal following "Length", as written
	Length string

	// Line is the 1-based input line the entry was read from
	Line int
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Entries)
}
