package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bike is a single bike owned by the user identified by Email.
// Make, Model and Year are optional; nil means the field was never set.
type Bike struct {
	BikeID        uuid.UUID  `json:"bikeId"`
	Email         string     `json:"email" validate:"required"`
	Make          *string    `json:"make"`
	Model         *string    `json:"model"`
	Year          *time.Time `json:"year"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
}

// BikePatch carries a partial update. A nil field means "leave the current
// value unchanged" - there is deliberately no way to clear a field back to
// null through a patch, only to overwrite it with a new non-nil value.
type BikePatch struct {
	Make  *string    `json:"make"`
	Model *string    `json:"model"`
	Year  *time.Time `json:"year"`
}
