package kb

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/mission-planner/model"
)

var (
	ErrVehicleExists   = errors.New("vehicle already exists")
	ErrBodyExists      = errors.New("body already exists")
	ErrCatalogBadInput = errors.New("invalid catalog record")
)

// Catalog is the in-memory, thread-safe store for vehicle and body records.
// It is populated once at process start and treated as read-only afterwards;
// the planner never mutates it, so concurrent requests need no coordination.
type Catalog struct {
	mu sync.RWMutex

	vehicles map[string]*model.Vehicle
	bodies   map[string]*model.Body
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		vehicles: make(map[string]*model.Vehicle),
		bodies:   make(map[string]*model.Body),
	}
}

// AddVehicle adds a new vehicle record. It returns an error if the name is
// empty or already present.
func (c *Catalog) AddVehicle(v *model.Vehicle) error {
	if v == nil || v.Name == "" {
		return fmt.Errorf("%w: nil or unnamed vehicle", ErrCatalogBadInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.vehicles[v.Name]; exists {
		return fmt.Errorf("%w: %q", ErrVehicleExists, v.Name)
	}
	c.vehicles[v.Name] = v
	return nil
}

// AddBody adds a new body record. It returns an error if the name is empty
// or already present.
func (c *Catalog) AddBody(b *model.Body) error {
	if b == nil || b.Name == "" {
		return fmt.Errorf("%w: nil or unnamed body", ErrCatalogBadInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.bodies[b.Name]; exists {
		return fmt.Errorf("%w: %q", ErrBodyExists, b.Name)
	}
	c.bodies[b.Name] = b
	return nil
}

// Vehicle returns the vehicle with the given name, or nil if not found.
func (c *Catalog) Vehicle(name string) *model.Vehicle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vehicles[name]
}

// Body returns the body with the given name, or nil if not found.
func (c *Catalog) Body(name string) *model.Body {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bodies[name]
}

// ListVehicles returns a snapshot of all vehicles, sorted by name so callers
// never depend on map iteration order.
func (c *Catalog) ListVehicles() []*model.Vehicle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]*model.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// ListBodies returns a snapshot of all bodies, sorted by name.
func (c *Catalog) ListBodies() []*model.Body {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]*model.Body, 0, len(c.bodies))
	for _, b := range c.bodies {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Counts returns the number of vehicles and bodies, for catalog gauges.
func (c *Catalog) Counts() (vehicles, bodies int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vehicles), len(c.bodies)
}
