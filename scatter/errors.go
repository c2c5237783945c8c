package scatter

import (
	"fmt"
)

// EntryError indicates that a table entry could not be turned into a record.
type EntryError struct {
	// Line is the input line of the entry
	Line int

	// Name is the partition name
	Name string

	// Field is "offset" or "length"
	Field string

	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("line %d: partition %s: %s: %v", e.Line, e.Name, e.Field, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
