package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pageland/matrix-bike-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (bike_id, email, make, model, year, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING bike_id, created_at, last_updated_at`

	err := r.db.QueryRowContext(ctx, query, bike.BikeID, bike.Email, bike.Make, bike.Model, bike.Year, bike.CreatedAt, bike.LastUpdatedAt).Scan(
		&bike.BikeID,
		&bike.CreatedAt,
		&bike.LastUpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, domain.NewInvalidArgument("required field is missing")
		}
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT bike_id, email, make, model, year, created_at, last_updated_at
              FROM bikes WHERE bike_id = $1`

	bike := &domain.Bike{}
	err := r.db.QueryRowContext(ctx, query, bikeID).Scan(
		&bike.BikeID,
		&bike.Email,
		&bike.Make,
		&bike.Model,
		&bike.Year,
		&bike.CreatedAt,
		&bike.LastUpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
	}
	if err != nil {
		return nil, err
	}

	return bike, nil
}

func (r *BikeRepository) GetBikesByEmail(ctx context.Context, email string) ([]*domain.Bike, error) {
	query := `SELECT bike_id, email, make, model, year, created_at, last_updated_at
              FROM bikes WHERE email = $1`

	return r.queryBikes(ctx, query, email)
}

func (r *BikeRepository) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	query := `SELECT bike_id, email, make, model, year, created_at, last_updated_at
              FROM bikes`

	return r.queryBikes(ctx, query)
}

func (r *BikeRepository) queryBikes(ctx context.Context, query string, args ...interface{}) ([]*domain.Bike, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bikes := make([]*domain.Bike, 0)

	for rows.Next() {
		bike := &domain.Bike{}
		err := rows.Scan(
			&bike.BikeID,
			&bike.Email,
			&bike.Make,
			&bike.Model,
			&bike.Year,
			&bike.CreatedAt,
			&bike.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	query := `DELETE FROM bikes WHERE bike_id = $1`

	result, err := r.db.ExecContext(ctx, query, bikeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
	}

	return nil
}

// UpdateBike patches a single row in one statement. NULL parameters fall
// through the COALESCE and keep the stored value, which is what gives the
// patch its "nil means leave unchanged" behaviour.
func (r *BikeRepository) UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			make = COALESCE($1, make),
			model = COALESCE($2, model),
			year = COALESCE($3, year),
			last_updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $4
		RETURNING bike_id, email, make, model, year, created_at, last_updated_at`

	bike := &domain.Bike{}
	err := r.db.QueryRowContext(ctx, query,
		patch.Make,
		patch.Model,
		patch.Year,
		bikeID,
	).Scan(
		&bike.BikeID,
		&bike.Email,
		&bike.Make,
		&bike.Model,
		&bike.Year,
		&bike.CreatedAt,
		&bike.LastUpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFound(fmt.Sprintf("the bike with the id %s cannot be found", bikeID))
		}
		return nil, fmt.Errorf("error updating bike: %w", err)
	}

	return bike, nil
}
