package usecase

import (
	"context"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivateLocationInput identifies the location to activate.
type ActivateLocationInput struct {
	AccountID    string
	LocationID   string
	LocationName string
}

// ActiveLocationUsecase manages the set of locations a user works on.
type ActiveLocationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*entity.ActiveLocation, error)

	// Activate is idempotent: an already active location is returned as is with created=false.
	Activate(ctx context.Context, userID uuid.UUID, input *ActivateLocationInput) (location *entity.ActiveLocation, created bool, err error)

	// Deactivate fails with ErrActiveLocationNotFound when nothing matches. accountID may be empty.
	Deactivate(ctx context.Context, userID uuid.UUID, accountID, locationID string) error
}
