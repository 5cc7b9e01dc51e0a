package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageland/matrix-bike-service/internal/core/domain"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	GetBikesByEmail(ctx context.Context, email string) ([]*domain.Bike, error)
	GetAllBikes(ctx context.Context) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error
}

type BikeService interface {
	CreateBike(ctx context.Context, email string, make, model *string, year *time.Time) (uuid.UUID, error)
	UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) error
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error
	GetUsersBikes(ctx context.Context, email string) ([]*domain.Bike, error)
	GetAllBikes(ctx context.Context) ([]*domain.Bike, error)
}
