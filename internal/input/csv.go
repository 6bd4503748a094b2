package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// decodeCSV reads a header row followed by records and returns them as one
// array of header-keyed objects.
func decodeCSV(r io.Reader, comma rune) ([]any, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []any{[]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	rows := []any{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = nil
			}
		}
		rows = append(rows, row)
	}
	return []any{rows}, nil
}
