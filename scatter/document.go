package scatter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/moffa90/go-mtkscatter/config"
)

// recordSeparator puts one blank line between two records.
const recordSeparator = "\n\n"

// Document is a complete scatter file: the general settings block followed by
// the preloader, pgpt, table and sgpt records.
type Document struct {
	Platform config.Platform
	Records  []Record
}

// Bytes renders the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo renders the document to w. Nothing is written if rendering fails.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := d.render(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (d *Document) render(buf *bytes.Buffer) error {
	if err := headerTmpl.Execute(buf, d.Platform); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	for i, r := range d.Records {
		if i > 0 {
			buf.WriteString(recordSeparator)
		}
		if err := recordTmpl.Execute(buf, r); err != nil {
			return fmt.Errorf("render record SYS%d (%s): %w", r.Index, r.Name, err)
		}
	}

	buf.WriteByte('\n')
	return nil
}
