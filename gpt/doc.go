// Package gpt parses the textual GPT table listing used as scatter generator input.
//
// # Table Format
//
// The table is line oriented. Each line names a partition, followed by ": " and free
// text holding an "Offset" and a "Length" token, each followed by a 0x-prefixed hex
// literal:
//
//	pgpt: Offset 0x0 Length 0x8000
//	boot_a: Offset 0x100000, Length 0x2000000 (32 MiB)
//
// Text around the two tokens is ignored. The table ends at the first empty line or at
// the end of the input, whichever comes first.
//
// # Usage
//
// Parse a table typed on a terminal:
//
//	table, err := gpt.ParseReader(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, e := range table.Entries {
//	    fmt.Printf("%s at %s (%s bytes)\n", e.Name, e.Offset, e.Length)
//	}
//
// Parse a table saved in a file:
//
//	table, err := gpt.Parse("gpt.txt")
//
// # Error Handling
//
// A malformed line stops parsing. The returned *LineError carries the line number and
// text and wraps one of ErrMissingSeparator, ErrEmptyName, ErrMissingOffset or
// ErrMissingLength, so callers can use errors.Is. No partial table is returned.
package gpt
