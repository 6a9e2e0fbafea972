package repository

import (
	"context"

	"nativoseo/internal/domain/entity"
	"nativoseo/internal/errors"

	"github.com/google/uuid"
)

// ErrActiveLocationNotFound is returned when no matching active location exists.
var ErrActiveLocationNotFound = errors.New("active location not found")

// ActiveLocationRepository persists the set of locations each user manages.
type ActiveLocationRepository interface {
	// List returns the user's active locations ordered by activation time.
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.ActiveLocation, error)

	// Find returns the active location for (user, account, location).
	Find(ctx context.Context, userID uuid.UUID, accountID, locationID string) (*entity.ActiveLocation, error)

	// FindByLocation returns the first active location with locationID regardless of account.
	FindByLocation(ctx context.Context, userID uuid.UUID, locationID string) (*entity.ActiveLocation, error)

	// Create persists a new active location.
	Create(ctx context.Context, location *entity.ActiveLocation) error

	// Delete removes the rows matching locationID, narrowed to accountID when it is not empty.
	// Returns ErrActiveLocationNotFound when nothing was removed.
	Delete(ctx context.Context, userID uuid.UUID, accountID, locationID string) error
}
