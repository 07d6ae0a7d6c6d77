package services

import (
	"strconv"
	"strings"

	"energy-dashboard/dataset"
	"energy-dashboard/models"
	"energy-dashboard/utils"
)

// Cleaner turns raw CSV rows into validated Plants.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean coerces numeric columns and drops every row missing latitude,
// longitude, or a usable capacity value. Every surviving row becomes exactly
// one plant, repeated rows included, and row order is preserved, so the same
// file always produces the same dataset.
func (c *Cleaner) Clean(header []string, rows []*models.RawPlantRow) *models.Dataset {
	recognized := make(map[string]struct{}, len(dataset.RequiredColumns))
	for _, col := range dataset.RequiredColumns {
		recognized[col] = struct{}{}
	}

	plants := make([]*models.Plant, 0, len(rows))

	for _, row := range rows {
		lat, ok := parseFloat(row.Fields["latitude"])
		if !ok {
			c.logger.Debug("[cleaner] Dropping line %d: missing latitude", row.Line)
			continue
		}
		lon, ok := parseFloat(row.Fields["longitude"])
		if !ok {
			c.logger.Debug("[cleaner] Dropping line %d: missing longitude", row.Line)
			continue
		}
		capMW, ok := parseFloat(row.Fields["capacity_mw"])
		if !ok || capMW < 0 {
			c.logger.Debug("[cleaner] Dropping line %d: unusable capacity %q",
				row.Line, row.Fields["capacity_mw"])
			continue
		}

		extra := make(map[string]string)
		for col, val := range row.Fields {
			if _, known := recognized[col]; !known {
				extra[col] = val
			}
		}

		plants = append(plants, &models.Plant{
			Name:       strings.TrimSpace(row.Fields["name"]),
			Country:    strings.TrimSpace(row.Fields["country_long"]),
			Fuel:       strings.TrimSpace(row.Fields["primary_fuel"]),
			CapacityMW: capMW,
			Latitude:   lat,
			Longitude:  lon,
			Extra:      extra,
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d plants (dropped %d)",
		len(rows), len(plants), len(rows)-len(plants))
	return &models.Dataset{Header: append([]string(nil), header...), Plants: plants}
}

// parseFloat reads a float column, treating empty and unparseable values as null.
func parseFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
