package scatter

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/moffa90/go-mtkscatter/gpt"
)

// Generator turns GPT tables into scatter documents.
//
// Generator keeps no state between calls and is safe for concurrent use.
type Generator struct {
	config Config
}

// New creates a new Generator with the given options.
//
// Example:
//
//	gen := scatter.New(scatter.WithLogger(logger))
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{config: cfg}
}

// Build creates the document for a parsed table:
//  1. SYS0 preloader and SYS1 pgpt fixed records
//  2. one record per table entry from SYS2 on, in table order
//  3. the sgpt record right after the last entry
//
// Any invalid entry fails the whole build.
func (g *Generator) Build(table *gpt.Table) (*Document, error) {
	platform := *g.config.Platform
	if err := platform.Validate(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, table.Len()+3)
	records = append(records, PreloaderRecord(), PGPTRecord())

	if table != nil {
		for i, e := range table.Entries {
			rec, err := entryRecord(FirstEntryIndex+i, e)
			if err != nil {
				return nil, err
			}

			g.config.Logger.Debug("partition record",
				zap.Int("index", rec.Index),
				zap.String("name", rec.Name),
				zap.String("file_name", rec.FileName),
				zap.String("operation_type", string(rec.OperationType)),
				zap.String("start_addr", rec.StartAddr),
				zap.String("size", rec.Size),
			)

			records = append(records, rec)
		}
	}

	records = append(records, SGPTRecord(FirstEntryIndex+table.Len()))

	g.config.Logger.Debug("scatter document built",
		zap.String("platform", platform.Platform),
		zap.Int("partitions", table.Len()),
		zap.Int("records", len(records)),
	)

	return &Document{Platform: platform, Records: records}, nil
}

// Generate parses a GPT table from r and renders its scatter document.
//
// Example:
//
//	data, err := scatter.New().Generate(strings.NewReader(
//	    "boot_a: Offset 0x100000 Length 0x2000000\n"))
func (g *Generator) Generate(r io.Reader) ([]byte, error) {
	table, err := gpt.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}

	doc, err := g.Build(table)
	if err != nil {
		return nil, err
	}

	return doc.Bytes()
}

func entryRecord(index int, e gpt.Entry) (Record, error) {
	start, err := gpt.TrimHex(e.Offset)
	if err != nil {
		return Record{}, &EntryError{Line: e.Line, Name: e.Name, Field: "offset", Err: err}
	}

	size, err := gpt.TrimHex(e.Length)
	if err != nil {
		return Record{}, &EntryError{Line: e.Line, Name: e.Name, Field: "length", Err: err}
	}

	return NewRecord(index, e.Name, start, size), nil
}
