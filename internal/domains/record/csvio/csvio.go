// Package csvio reads and writes record tables in the flat-file format: UTF-8,
// comma separated, one header row, one record per line.
package csvio

import (
	"desk/internal/domains/record/model"
	"desk/shared/failure"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bom = "\ufeff"

type Mode int

const (
	// Lenient fills absent columns with empty values; used when loading a store file.
	Lenient Mode = iota
	// Strict rejects tables missing any canonical column; used for imports.
	Strict
)

// Encode writes the header and every record in canonical column order.
func Encode[T model.Record[T]](w io.Writer, records []T) error {
	var zero T

	writer := csv.NewWriter(w)

	if err := writer.Write(zero.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("failed to write record %s: %w", record.GetID(), err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	return nil
}

// Decode parses a table whose header names are matched case-insensitively
// and in any order. Unknown columns are ignored.
func Decode[T model.Record[T]](r io.Reader, mode Mode) ([]T, error) {
	var zero T

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		if mode == Strict {
			return nil, failure.Schema(zero.Columns()) //nolint:wrapcheck
		}

		return []T{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	positions := indexHeader(header)

	if mode == Strict {
		if missing := missingColumns(zero.Columns(), positions); len(missing) > 0 {
			return nil, failure.Schema(missing) //nolint:wrapcheck
		}
	}

	records := []T{}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		values := make(map[string]string, len(positions))
		for column, position := range positions {
			if position < len(row) {
				values[column] = row[position]
			}
		}

		records = append(records, zero.FromValues(values))
	}

	return records, nil
}

func indexHeader(header []string) map[string]int {
	positions := make(map[string]int, len(header))

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, bom)
		}

		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	return positions
}

func missingColumns(columns []string, positions map[string]int) []string {
	var missing []string

	for _, column := range columns {
		if _, ok := positions[column]; !ok {
			missing = append(missing, column)
		}
	}

	return missing
}
