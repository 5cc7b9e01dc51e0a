package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pageland/matrix-bike-service/internal/core/domain"

	"github.com/google/uuid"
)

// BikeRepository keeps bikes in a mutex-guarded map. It backs the service
// when no database is configured and carries the same observable semantics
// as the postgres adapter.
type BikeRepository struct {
	mu    sync.RWMutex
	bikes map[uuid.UUID]*domain.Bike
}

func NewBikeRepository() *BikeRepository {
	return &BikeRepository{
		bikes: make(map[uuid.UUID]*domain.Bike),
	}
}

func (r *BikeRepository) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBike(bike)
	r.bikes[stored.BikeID] = stored
	return cloneBike(stored), nil
}

func (r *BikeRepository) GetBikeByID(_ context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bike, ok := r.bikes[bikeID]
	if !ok {
		return nil, domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
	}
	return cloneBike(bike), nil
}

func (r *BikeRepository) GetBikesByEmail(_ context.Context, email string) ([]*domain.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bikes := make([]*domain.Bike, 0)
	for _, bike := range r.bikes {
		if bike.Email == email {
			bikes = append(bikes, cloneBike(bike))
		}
	}
	return bikes, nil
}

func (r *BikeRepository) GetAllBikes(_ context.Context) ([]*domain.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bikes := make([]*domain.Bike, 0, len(r.bikes))
	for _, bike := range r.bikes {
		bikes = append(bikes, cloneBike(bike))
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(_ context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bike, ok := r.bikes[bikeID]
	if !ok {
		return nil, domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
	}

	if patch.Make != nil {
		bike.Make = patch.Make
	}
	if patch.Model != nil {
		bike.Model = patch.Model
	}
	if patch.Year != nil {
		bike.Year = patch.Year
	}
	bike.LastUpdatedAt = time.Now().UTC()

	return cloneBike(bike), nil
}

func (r *BikeRepository) DeleteBike(_ context.Context, bikeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bikes[bikeID]; !ok {
		return domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
	}
	delete(r.bikes, bikeID)
	return nil
}

// cloneBike keeps callers from aliasing stored records.
func cloneBike(bike *domain.Bike) *domain.Bike {
	clone := *bike
	if bike.Make != nil {
		v := *bike.Make
		clone.Make = &v
	}
	if bike.Model != nil {
		v := *bike.Model
		clone.Model = &v
	}
	if bike.Year != nil {
		v := *bike.Year
		clone.Year = &v
	}
	return &clone
}
