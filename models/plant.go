package models

// RawPlantRow holds one unprocessed CSV row, keyed by column name.
// This is the loader's output before any coercion or validation.
type RawPlantRow struct {
	Fields map[string]string
	Line   int
}

// Plant is a cleaned, validated power-plant record. Latitude, longitude and
// capacity are guaranteed present once a Plant exists.
type Plant struct {
	Name       string            `json:"name"`
	Country    string            `json:"country"`
	Fuel       string            `json:"fuel"`
	CapacityMW float64           `json:"capacity_mw"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Extra      map[string]string `json:"-"`
}

// Dataset is the immutable in-memory table of cleaned plants. Header keeps the
// original CSV column order so exports can reproduce it, extra columns included.
type Dataset struct {
	Header []string
	Plants []*Plant
}

// FilterCriteria is the transient per-interaction selection: one country and a
// set of fuel types. An empty fuel set selects nothing, not everything.
type FilterCriteria struct {
	Country string
	Fuels   map[string]struct{}
}

// NewFilterCriteria builds criteria from a country and a list of fuel names.
func NewFilterCriteria(country string, fuels []string) FilterCriteria {
	set := make(map[string]struct{}, len(fuels))
	for _, f := range fuels {
		set[f] = struct{}{}
	}
	return FilterCriteria{Country: country, Fuels: set}
}

// HasFuel reports whether the fuel is part of the selection.
func (c FilterCriteria) HasFuel(fuel string) bool {
	_, ok := c.Fuels[fuel]
	return ok
}

// FuelCapacity is one group of the capacity-by-fuel summary.
type FuelCapacity struct {
	Fuel    string  `json:"fuel"`
	TotalMW float64 `json:"total_mw"`
}

// ViewMetrics holds the dashboard KPIs for the current filtered view.
type ViewMetrics struct {
	TotalMW    float64 `json:"total_mw"`
	PlantCount int     `json:"plant_count"`
	TopFuel    string  `json:"top_fuel"`
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker describes one map marker for the external map widget.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// ChartPoint is one bar of the capacity-by-fuel chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// OverviewReport holds dataset-wide figures printed at startup.
type OverviewReport struct {
	TotalPlants  int
	CountryCount int
	TotalMW      float64
	TopFuels     []FuelCapacity
	LargestPlant *Plant
}
