package storage

import "energy-dashboard/models"

// PlantWriter is the interface any storage backend must satisfy.
type PlantWriter interface {
	Write(plants []*models.Plant) error
	Close() error
}
