package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"energy-dashboard/models"
)

// ErrLoad marks a fatal dataset load failure: missing file, unreadable CSV, or
// a header with none of the recognized columns. There is no retry path — the
// input is a static file.
var ErrLoad = errors.New("dataset: load failed")

// RequiredColumns are the columns the cleaner needs. Any other column in the
// file is carried through untouched into the export path.
var RequiredColumns = []string{
	"name", "country_long", "primary_fuel", "capacity_mw", "latitude", "longitude",
}

// Read parses the CSV at path into header-mapped raw rows, preserving file
// order. Rows with a different field count than the header are skipped rather
// than failing the whole load.
func Read(path string) ([]string, []*models.RawPlantRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %q: %v", ErrLoad, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read header of %q: %v", ErrLoad, path, err)
	}
	if !hasRecognizedColumn(header) {
		return nil, nil, fmt.Errorf("%w: %q has no recognized columns", ErrLoad, path)
	}

	var rows []*models.RawPlantRow
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("%w: read %q line %d: %v", ErrLoad, path, line, err)
		}
		if len(record) != len(header) {
			continue
		}
		fields := make(map[string]string, len(header))
		for i, col := range header {
			fields[col] = record[i]
		}
		rows = append(rows, &models.RawPlantRow{Fields: fields, Line: line})
	}
	return header, rows, nil
}

func hasRecognizedColumn(header []string) bool {
	for _, col := range header {
		for _, want := range RequiredColumns {
			if col == want {
				return true
			}
		}
	}
	return false
}
