package services

import (
	"fmt"

	"energy-dashboard/models"
)

// fuelColors is the fixed fuel→marker-color table used by the map widget.
var fuelColors = map[string]string{
	"Nuclear": "purple",
	"Coal":    "black",
	"Hydro":   "blue",
	"Solar":   "orange",
	"Gas":     "red",
	"Wind":    "green",
}

// defaultFuelColor is used for any fuel not in the table.
const defaultFuelColor = "gray"

// FuelColor maps a fuel type to its marker color. Total: unknown fuels get
// the gray default, so no call site needs an existence check.
func FuelColor(fuel string) string {
	if c, ok := fuelColors[fuel]; ok {
		return c
	}
	return defaultFuelColor
}

// ToMarkers maps plants to marker descriptors for the external map widget.
func ToMarkers(plants []*models.Plant) []models.Marker {
	markers := make([]models.Marker, 0, len(plants))
	for _, p := range plants {
		markers = append(markers, models.Marker{
			Lat:   p.Latitude,
			Lon:   p.Longitude,
			Label: fmt.Sprintf("%s (%.1f MW)", p.Name, p.CapacityMW),
			Color: FuelColor(p.Fuel),
		})
	}
	return markers
}

// ToChartSeries maps a fuel summary to bar-chart points, preserving the
// descending order the summary was built with.
func ToChartSeries(summary []models.FuelCapacity) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(summary))
	for _, fc := range summary {
		points = append(points, models.ChartPoint{Label: fc.Fuel, Value: fc.TotalMW})
	}
	return points
}

// ToGeoJSON maps plants to a GeoJSON FeatureCollection.
func ToGeoJSON(plants []*models.Plant) models.FeatureCollection {
	features := make([]models.Feature, 0, len(plants))
	for _, p := range plants {
		features = append(features, models.Feature{
			Type: "Feature",
			Geometry: models.Geometry{
				Type:        "Point",
				Coordinates: []float64{p.Longitude, p.Latitude},
			},
			Properties: map[string]interface{}{
				"name":        p.Name,
				"fuel":        p.Fuel,
				"capacity_mw": p.CapacityMW,
				"color":       FuelColor(p.Fuel),
			},
		})
	}
	return models.FeatureCollection{Type: "FeatureCollection", Features: features}
}
