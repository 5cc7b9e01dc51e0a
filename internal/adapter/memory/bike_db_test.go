package memory

import (
	"context"
	"testing"
	"time"

	"github.com/pageland/matrix-bike-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBike(t *testing.T, repo *BikeRepository, email string) *domain.Bike {
	t.Helper()
	now := time.Now().UTC()
	bike, err := repo.CreateBike(context.Background(), &domain.Bike{
		BikeID:        uuid.New(),
		Email:         email,
		CreatedAt:     now,
		LastUpdatedAt: now,
	})
	require.NoError(t, err)
	return bike
}

func TestBikeRepository_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := NewBikeRepository()
	bike := storedBike(t, repo, "rider@domain.com")

	bikeMake := "Trek"
	updated, err := repo.UpdateBike(context.Background(), bike.BikeID, domain.BikePatch{Make: &bikeMake})
	require.NoError(t, err)
	require.NotNil(t, updated.Make)
	assert.Equal(t, "Trek", *updated.Make)
	assert.Nil(t, updated.Model)
	assert.Nil(t, updated.Year)
}

func TestBikeRepository_ReadsDoNotAliasStore(t *testing.T) {
	repo := NewBikeRepository()
	bike := storedBike(t, repo, "rider@domain.com")

	fetched, err := repo.GetBikeByID(context.Background(), bike.BikeID)
	require.NoError(t, err)
	mutated := "mutated"
	fetched.Make = &mutated

	again, err := repo.GetBikeByID(context.Background(), bike.BikeID)
	require.NoError(t, err)
	assert.Nil(t, again.Make, "mutating a returned bike must not change the stored record")
}

func TestBikeRepository_NotFound(t *testing.T) {
	repo := NewBikeRepository()

	_, err := repo.GetBikeByID(context.Background(), uuid.New())
	assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))

	_, err = repo.UpdateBike(context.Background(), uuid.New(), domain.BikePatch{})
	assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))

	err = repo.DeleteBike(context.Background(), uuid.New())
	assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
}
