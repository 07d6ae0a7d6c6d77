package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"energy-dashboard/models"
)

// ExportCSV serializes plants back to UTF-8 CSV bytes, rows ordered by
// capacity descending. The header is the original file header, so recognized
// columns are rewritten from the cleaned values and any extra columns pass
// through unmodified. Pure and idempotent.
func ExportCSV(header []string, plants []*models.Plant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	sorted := append([]*models.Plant(nil), plants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CapacityMW > sorted[j].CapacityMW
	})

	for _, p := range sorted {
		if err := w.Write(rowFor(header, p)); err != nil {
			return nil, fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// rowFor serializes one plant in the given column order.
func rowFor(header []string, p *models.Plant) []string {
	row := make([]string, len(header))
	for i, col := range header {
		switch col {
		case "name":
			row[i] = p.Name
		case "country_long":
			row[i] = p.Country
		case "primary_fuel":
			row[i] = p.Fuel
		case "capacity_mw":
			row[i] = strconv.FormatFloat(p.CapacityMW, 'f', -1, 64)
		case "latitude":
			row[i] = strconv.FormatFloat(p.Latitude, 'f', -1, 64)
		case "longitude":
			row[i] = strconv.FormatFloat(p.Longitude, 'f', -1, 64)
		default:
			row[i] = p.Extra[col]
		}
	}
	return row
}

// CSVWriter writes plant exports to a file on disk.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	path   string
	header []string
}

// NewCSVWriter prepares a file-backed exporter at the given path, creating
// intermediate directories.
func NewCSVWriter(path string, header []string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &CSVWriter{path: path, header: append([]string(nil), header...)}, nil
}

// Write overwrites the file with the given plants, capacity descending.
func (c *CSVWriter) Write(plants []*models.Plant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := ExportCSV(c.header, plants)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("csv: write file %q: %w", c.path, err)
	}
	return nil
}

// Close is a no-op; each Write is a complete file.
func (c *CSVWriter) Close() error { return nil }
