package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"energy-dashboard/models"
	"energy-dashboard/utils"
)

// ErrEmptyDataset is returned by aggregates that have no defined value over
// zero records.
var ErrEmptyDataset = errors.New("insights: empty dataset")

// TopFuelNone is the TopFuel sentinel when the filtered set is empty.
const TopFuelNone = "N/A"

// InsightService computes the dashboard aggregates over a filtered plant set.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// SummarizeByFuel groups plants by fuel, sums capacity per group and sorts
// descending by total. Ties keep first-encountered order. Empty input returns
// an empty slice; callers must not assume a first entry exists.
func (s *InsightService) SummarizeByFuel(plants []*models.Plant) []models.FuelCapacity {
	index := make(map[string]int)
	var summary []models.FuelCapacity

	for _, p := range plants {
		i, ok := index[p.Fuel]
		if !ok {
			i = len(summary)
			index[p.Fuel] = i
			summary = append(summary, models.FuelCapacity{Fuel: p.Fuel})
		}
		summary[i].TotalMW += p.CapacityMW
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].TotalMW > summary[j].TotalMW
	})
	return summary
}

// ComputeMetrics derives the KPI row for the current view. TopFuel is the
// sentinel "N/A" when there is nothing to rank.
func (s *InsightService) ComputeMetrics(plants []*models.Plant) models.ViewMetrics {
	m := models.ViewMetrics{PlantCount: len(plants), TopFuel: TopFuelNone}
	for _, p := range plants {
		m.TotalMW += p.CapacityMW
	}
	if summary := s.SummarizeByFuel(plants); len(summary) > 0 {
		m.TopFuel = summary[0].Fuel
	}
	return m
}

// Centroid is the arithmetic mean of the plant coordinates, used to center the
// map. It fails with ErrEmptyDataset on empty input instead of producing NaN.
func (s *InsightService) Centroid(plants []*models.Plant) (models.Coordinate, error) {
	if len(plants) == 0 {
		return models.Coordinate{}, ErrEmptyDataset
	}
	var c models.Coordinate
	for _, p := range plants {
		c.Lat += p.Latitude
		c.Lon += p.Longitude
	}
	c.Lat /= float64(len(plants))
	c.Lon /= float64(len(plants))
	return c, nil
}

// Overview computes dataset-wide figures for the startup report.
func (s *InsightService) Overview(ds *models.Dataset) *models.OverviewReport {
	report := &models.OverviewReport{TotalPlants: len(ds.Plants)}
	if len(ds.Plants) == 0 {
		return report
	}

	report.CountryCount = len(Countries(ds.Plants))
	largest := ds.Plants[0]
	for _, p := range ds.Plants {
		report.TotalMW += p.CapacityMW
		if p.CapacityMW > largest.CapacityMW {
			largest = p
		}
	}
	report.LargestPlant = largest

	summary := s.SummarizeByFuel(ds.Plants)
	if len(summary) > 5 {
		summary = summary[:5]
	}
	report.TopFuels = summary
	return report
}

// Print writes the overview report to the terminal.
func (s *InsightService) Print(r *models.OverviewReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  ⚡ GLOBAL POWER PLANT DATASET\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Plants loaded   : \033[1m%d\033[0m\n", r.TotalPlants)
	fmt.Printf("  Countries       : \033[1m%d\033[0m\n", r.CountryCount)
	fmt.Printf("  Total capacity  : \033[1;32m%.0f MW\033[0m\n", r.TotalMW)
	fmt.Println()

	if r.LargestPlant != nil {
		fmt.Printf("\033[1;33m  Largest Plant\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s (%s)\n", r.LargestPlant.Name, r.LargestPlant.Country)
		fmt.Printf("  Fuel     : %s\n", r.LargestPlant.Fuel)
		fmt.Printf("  Capacity : \033[1;31m%.0f MW\033[0m\n", r.LargestPlant.CapacityMW)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Capacity by Fuel (top %d)\033[0m\n", len(r.TopFuels))
	fmt.Printf("  %s\n", thin)
	if len(r.TopFuels) == 0 {
		fmt.Printf("  No fuel data\n")
	} else {
		max := r.TopFuels[0].TotalMW
		for _, fc := range r.TopFuels {
			width := 1
			if max > 0 {
				width = 1 + int(fc.TotalMW/max*30)
			}
			bar := strings.Repeat("█", width)
			fmt.Printf("  %-12s %s %.0f MW\n", fc.Fuel, bar, fc.TotalMW)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}
