package services

import (
	"testing"

	"energy-dashboard/models"
)

func samplePlants() []*models.Plant {
	return []*models.Plant{
		{Name: "Vindhyachal", Country: "India", Fuel: "Coal", CapacityMW: 100, Latitude: 24.1, Longitude: 82.7},
		{Name: "Kamuthi", Country: "India", Fuel: "Solar", CapacityMW: 50, Latitude: 9.3, Longitude: 78.4},
		{Name: "Mundra", Country: "India", Fuel: "Coal", CapacityMW: 30, Latitude: 22.8, Longitude: 69.5},
		{Name: "Itaipu", Country: "Brazil", Fuel: "Hydro", CapacityMW: 14000, Latitude: -25.4, Longitude: -54.6},
		{Name: "Gansu", Country: "China", Fuel: "Wind", CapacityMW: 7965, Latitude: 40.2, Longitude: 96.9},
	}
}

func TestFilterMatchesBothPredicates(t *testing.T) {
	plants := samplePlants()
	got := Filter(plants, models.NewFilterCriteria("India", []string{"Coal", "Solar"}))

	if len(got) != 3 {
		t.Fatalf("expected 3 plants, got %d", len(got))
	}
	for _, p := range got {
		if p.Country != "India" {
			t.Errorf("plant %q: country %q leaked through", p.Name, p.Country)
		}
		if p.Fuel != "Coal" && p.Fuel != "Solar" {
			t.Errorf("plant %q: fuel %q leaked through", p.Name, p.Fuel)
		}
	}
}

func TestFilterPreservesDatasetOrder(t *testing.T) {
	got := Filter(samplePlants(), models.NewFilterCriteria("India", []string{"Coal", "Solar"}))
	want := []string{"Vindhyachal", "Kamuthi", "Mundra"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterEmptyFuelSelectionYieldsNothing(t *testing.T) {
	got := Filter(samplePlants(), models.NewFilterCriteria("India", nil))
	if len(got) != 0 {
		t.Errorf("empty fuel selection should yield no plants, got %d", len(got))
	}
}

func TestFilterUnknownCountryYieldsNothing(t *testing.T) {
	got := Filter(samplePlants(), models.NewFilterCriteria("Atlantis", []string{"Coal"}))
	if len(got) != 0 {
		t.Errorf("unknown country should yield no plants, got %d", len(got))
	}
}

func TestCountries(t *testing.T) {
	got := Countries(samplePlants())
	want := []string{"Brazil", "China", "India"}
	if len(got) != len(want) {
		t.Fatalf("countries: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("countries[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFuelsForCountry(t *testing.T) {
	got := FuelsForCountry(samplePlants(), "India")
	want := []string{"Coal", "Solar"}
	if len(got) != len(want) {
		t.Fatalf("fuels: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fuels[%d]: got %q, want %q", i, got[i], want[i])
		}
	}

	if fuels := FuelsForCountry(samplePlants(), "Atlantis"); len(fuels) != 0 {
		t.Errorf("unknown country should have no fuels, got %v", fuels)
	}
}
