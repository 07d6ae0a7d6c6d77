package services

import (
	"sort"

	"energy-dashboard/models"
)

// Filter returns the plants matching both criteria predicates, in dataset
// order. Pure single pass. An empty fuel selection yields an empty result, and
// an unknown country yields an empty result rather than an error.
func Filter(plants []*models.Plant, criteria models.FilterCriteria) []*models.Plant {
	var out []*models.Plant
	for _, p := range plants {
		if p.Country == criteria.Country && criteria.HasFuel(p.Fuel) {
			out = append(out, p)
		}
	}
	return out
}

// Countries returns the sorted list of distinct countries in the dataset.
func Countries(plants []*models.Plant) []string {
	return distinct(plants, func(p *models.Plant) string { return p.Country })
}

// FuelsForCountry returns the sorted list of fuel types present in the given
// country. This drives the default "all fuels" selection.
func FuelsForCountry(plants []*models.Plant, country string) []string {
	var in []*models.Plant
	for _, p := range plants {
		if p.Country == country {
			in = append(in, p)
		}
	}
	return distinct(in, func(p *models.Plant) string { return p.Fuel })
}

func distinct(plants []*models.Plant, key func(*models.Plant) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range plants {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
