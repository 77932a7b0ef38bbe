package catalog

import (
	"errors"
	"sort"
	"sync"

	"prestige-backend/internal/models"
)

// ErrCarNotFound means the given id matches no car in the fleet.
var ErrCarNotFound = errors.New("car not found")

// FleetStore owns the in-memory fleet. Cars are fixed at startup; only the
// status field mutates, exclusively through SetStatus. All reads hand out
// copies so callers can never alias the stored entries.
type FleetStore struct {
	mu   sync.RWMutex
	cars map[int]models.Car
}

func NewFleetStore(seed []models.Car) *FleetStore {
	cars := make(map[int]models.Car, len(seed))
	for _, c := range seed {
		cars[c.ID] = c
	}
	return &FleetStore{cars: cars}
}

// Cars returns the fleet sorted by id.
func (f *FleetStore) Cars() []models.Car {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]models.Car, 0, len(f.cars))
	for _, c := range f.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a copy of the car with the given id.
func (f *FleetStore) Get(id int) (models.Car, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c, ok := f.cars[id]
	if !ok {
		return models.Car{}, ErrCarNotFound
	}
	return c, nil
}

// SetStatus replaces the car's status, leaving every other field untouched.
// The update is copy-on-write: the stored entry is swapped for a fresh value.
// Returns ErrCarNotFound for unknown ids, with no other car affected.
func (f *FleetStore) SetStatus(id int, status models.CarStatus) (models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.cars[id]
	if !ok {
		return models.Car{}, ErrCarNotFound
	}

	c.Status = status
	f.cars[id] = c
	return c, nil
}

// Stats derives availability totals from current state. Computed on every
// call, never stored.
func (f *FleetStore) Stats() (total, available, maintenance int) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, c := range f.cars {
		total++
		switch c.Status {
		case models.StatusAvailable:
			available++
		case models.StatusMaintenance:
			maintenance++
		}
	}
	return total, available, maintenance
}
