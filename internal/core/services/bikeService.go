package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pageland/matrix-bike-service/internal/core/domain"
	"github.com/pageland/matrix-bike-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	allBikesCacheKey     = "bikes:all"
	bikesByEmailCacheKey = "bikes:email:"
	bikesCacheTTL        = 15 * time.Minute
)

type BikeService struct {
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// CreateBike stores a new bike for the given owner and returns its id.
// Only the blank-email guard lives here; email format and blank make/model
// checks belong to the HTTP boundary, so callers of the service itself are
// trusted on those.
func (s *BikeService) CreateBike(ctx context.Context, email string, make, model *string, year *time.Time) (uuid.UUID, error) {
	if err := s.validate.Var(email, "required"); err != nil || strings.TrimSpace(email) == "" {
		s.logger.Error("Rejected bike with blank email", map[string]interface{}{
			"email": email,
		})
		return uuid.Nil, domain.NewInvalidArgument("email cannot be null or empty")
	}

	now := time.Now().UTC()
	bike := &domain.Bike{
		BikeID:        uuid.New(),
		Email:         email,
		Make:          make,
		Model:         model,
		Year:          year,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return uuid.Nil, err
	}

	s.invalidateListCaches(createdBike.Email)

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.BikeID,
		"email":   createdBike.Email,
	})

	return createdBike.BikeID, nil
}

// UpdateBike applies a field-level patch to an existing bike. Nil patch
// fields are left unchanged; there is no way to clear a field to null here.
func (s *BikeService) UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) error {
	updatedBike, err := s.bikeRepo.UpdateBike(ctx, bikeID, patch)
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.invalidateListCaches(updatedBike.Email)

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

// DeleteBike removes a bike. Deleting an id that does not exist is a
// success, not an error - the asymmetry with UpdateBike is intentional.
func (s *BikeService) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeID)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.Debug("Bike already absent on delete", map[string]interface{}{
				"bike_id": bikeID,
			})
			return nil
		}
		s.logger.Error("Failed to fetch bike for delete", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	if err := s.bikeRepo.DeleteBike(ctx, bikeID); err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.invalidateListCaches(bike.Email)

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

// GetUsersBikes returns every bike whose owner email matches exactly.
func (s *BikeService) GetUsersBikes(ctx context.Context, email string) ([]*domain.Bike, error) {
	cacheKey := bikesByEmailCacheKey + email
	if bikes, ok := s.cachedBikes(cacheKey); ok {
		return bikes, nil
	}

	bikes, err := s.bikeRepo.GetBikesByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get bikes for user", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return nil, err
	}
	if bikes == nil {
		bikes = []*domain.Bike{}
	}

	s.cacheBikes(cacheKey, bikes)

	s.logger.Info("Retrieved bikes for user", map[string]interface{}{
		"email":       email,
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

// GetAllBikes returns every stored bike, or an empty slice when there are none.
func (s *BikeService) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	if bikes, ok := s.cachedBikes(allBikesCacheKey); ok {
		return bikes, nil
	}

	bikes, err := s.bikeRepo.GetAllBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if bikes == nil {
		bikes = []*domain.Bike{}
	}

	s.cacheBikes(allBikesCacheKey, bikes)

	return bikes, nil
}

func (s *BikeService) cachedBikes(cacheKey string) ([]*domain.Bike, bool) {
	cachedData, err := s.cache.Get(cacheKey)
	if err != nil {
		return nil, false
	}

	var bikes []*domain.Bike
	if err := json.Unmarshal(cachedData, &bikes); err != nil {
		return nil, false
	}
	if bikes == nil {
		bikes = []*domain.Bike{}
	}
	return bikes, true
}

func (s *BikeService) cacheBikes(cacheKey string, bikes []*domain.Bike) {
	bikesData, err := json.Marshal(bikes)
	if err != nil {
		s.logger.Warn("Failed to marshal bikes for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   cacheKey,
		})
		return
	}
	if err := s.cache.Set(cacheKey, bikesData, bikesCacheTTL); err != nil {
		s.logger.Warn("Failed to cache bikes", map[string]interface{}{
			"error": err.Error(),
			"key":   cacheKey,
		})
	}
}

func (s *BikeService) invalidateListCaches(email string) {
	for _, cacheKey := range []string{allBikesCacheKey, bikesByEmailCacheKey + email} {
		if err := s.cache.Delete(cacheKey); err != nil {
			s.logger.Warn("Failed to invalidate bikes cache", map[string]interface{}{
				"error": err.Error(),
				"key":   cacheKey,
			})
		}
	}
}
