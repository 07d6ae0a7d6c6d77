package dataset

import (
	"sync"

	"energy-dashboard/models"
)

// Cache holds the process-wide dataset. Lifecycle: loaded once on first Get,
// never mutated, never invalidated, no teardown. A load failure is cached too;
// the input file is static, so retrying cannot change the outcome.
type Cache struct {
	once sync.Once
	ds   *models.Dataset
	err  error
}

// Get returns the cached dataset, running load exactly once across all
// callers.
func (c *Cache) Get(load func() (*models.Dataset, error)) (*models.Dataset, error) {
	c.once.Do(func() {
		c.ds, c.err = load()
	})
	return c.ds, c.err
}
