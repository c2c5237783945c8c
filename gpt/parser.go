package gpt

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"regexp"
	"strings"
)

// Constants for GPT table parsing.
const (
	// NameSeparator ends the partition name on every line
	NameSeparator = ": "

	// MaxLineLength is the longest line accepted, in bytes
	MaxLineLength = 64 * 1024

	// DefaultEntryCapacity is the initial capacity of the entries slice
	DefaultEntryCapacity = 64
)

var (
	offsetPattern = regexp.MustCompile(`Offset (0x[0-9a-fA-F]+)`)
	lengthPattern = regexp.MustCompile(`Length (0x[0-9a-fA-F]+)`)
)

// Parse parses a GPT table listing from the given file path.
//
// Example:
//
//	table, err := gpt.Parse("gpt.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d partitions\n", table.Len())
func Parse(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a GPT table listing from any io.Reader.
// Reading stops at the first empty line, so an interactive terminal can end the
// table with a blank line. An input that starts with an empty line yields an empty table.
//
// Example:
//
//	table, err := gpt.ParseReader(strings.NewReader("boot_a: Offset 0x100000 Length 0x2000000\n"))
func ParseReader(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)

	table := &Table{Entries: make([]Entry, 0, DefaultEntryCapacity)}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// An empty line ends the table
		if line == "" {
			break
		}

		entry, err := ParseLine(line)
		if err != nil {
			return nil, &LineError{Line: lineNum, Text: line, Err: err}
		}
		entry.Line = lineNum

		table.Entries = append(table.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	return table, nil
}

// ParseLine parses a single table line of the form
//
//	<name>: ... Offset 0x<hex> ... Length 0x<hex> ...
//
// The returned entry has no line number set.
func ParseLine(line string) (Entry, error) {
	name, rest, ok := strings.Cut(line, NameSeparator)
	if !ok {
		return Entry{}, ErrMissingSeparator
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}

	offset := offsetPattern.FindStringSubmatch(rest)
	if offset == nil {
		return Entry{}, ErrMissingOffset
	}

	length := lengthPattern.FindStringSubmatch(rest)
	if length == nil {
		return Entry{}, ErrMissingLength
	}

	return Entry{
		Name:   name,
		Offset: offset[1],
		Length: length[1],
	}, nil
}

// TrimHex normalizes a hex literal to its canonical lowercase "0x" form.
// The "0x" or "0X" prefix is optional and leading zeros are dropped.
// Values of any size are accepted.
//
// Example:
//
//	s, _ := gpt.TrimHex("0X00001000") // "0x1000"
func TrimHex(s string) (string, error) {
	digits := strings.TrimSpace(s)
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	// big.Int would accept a sign
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return "0x" + n.Text(16), nil
}
