// Package ingest loads raw permit exports and normalizes them into leads.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RawRow is a single header-keyed record from a tabular export. Every field
// is optional; lookups on absent keys return the empty string.
type RawRow map[string]string

// Get returns the trimmed value for a field, or "" when absent.
func (r RawRow) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// ReadCSV parses a header-led CSV stream into raw rows, preserving input
// order. Ragged rows are tolerated: short rows leave trailing fields absent,
// long rows have their extra cells dropped. An empty stream is a valid
// zero-row result, not an error.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}

		row := make(RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
