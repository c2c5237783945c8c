package gpt

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by LineError and returned by TrimHex.
var (
	ErrMissingSeparator = errors.New(`missing ": " after partition name`)
	ErrEmptyName        = errors.New("empty partition name")
	ErrMissingOffset    = errors.New(`missing "Offset 0x..." token`)
	ErrMissingLength    = errors.New(`missing "Length 0x..." token`)
	ErrInvalidHex       = errors.New("invalid hex literal")
)

// LineError reports a malformed table line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
