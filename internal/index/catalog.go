package index

import (
	"slices"
	"sync"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/dataset"
	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// Catalog holds the current lead directory in memory.
// Sessions copy it once at creation; reloads only affect new sessions.
type Catalog struct {
	mu         sync.RWMutex
	companies  []domain.Company
	byID       map[string]int // ID -> position in companies
	lists      []domain.SavedList
	alerts     []domain.AlertTrigger
	facets     domain.Facets
	source     string
	lastReload time.Time
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]int),
	}
}

// Replace swaps the whole directory for ds.
func (c *Catalog) Replace(ds *dataset.Dataset, source string) {
	byID := make(map[string]int, len(ds.Companies))
	for i, company := range ds.Companies {
		byID[company.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.companies = slices.Clone(ds.Companies)
	c.byID = byID
	c.lists = slices.Clone(ds.Lists)
	c.alerts = slices.Clone(ds.Alerts)
	c.facets = domain.Facets{
		Industries: slices.Clone(ds.Facets.Industries),
		Counties:   slices.Clone(ds.Facets.Counties),
	}
	c.source = source
	c.lastReload = time.Now()
}

// Companies returns the companies in provider order.
func (c *Catalog) Companies() []domain.Company {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.companies)
}

// Company retrieves a company by ID
func (c *Catalog) Company(id string) (domain.Company, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Company{}, false
	}
	return c.companies[i], true
}

// Seed returns deep copies of the saved lists and alerts every new session starts with.
func (c *Catalog) Seed() ([]domain.SavedList, []domain.AlertTrigger) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lists := make([]domain.SavedList, 0, len(c.lists))
	for _, l := range c.lists {
		lists = append(lists, l.Clone())
	}
	alerts := make([]domain.AlertTrigger, 0, len(c.alerts))
	for _, a := range c.alerts {
		alerts = append(alerts, a.Clone())
	}
	return lists, alerts
}

// Facets returns the filter options.
func (c *Catalog) Facets() domain.Facets {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.Facets{
		Industries: slices.Clone(c.facets.Industries),
		Counties:   slices.Clone(c.facets.Counties),
	}
}

// Count returns the number of companies in the catalog
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.companies)
}

// Source returns where the current directory was loaded from.
func (c *Catalog) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.source
}

// GetLastReload returns the timestamp of the last reload
func (c *Catalog) GetLastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
