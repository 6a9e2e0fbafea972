package usecase

import (
	"context"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessProfileUsecase lists the user's Business Profile accounts and locations.
type BusinessProfileUsecase interface {
	// ListAccounts always asks Google.
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error)

	// ListLocations always asks Google.
	ListLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error)

	// CachedAccounts serves from the local cache, filling it on first use.
	CachedAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error)

	// CachedLocations serves from the local cache, filling it on first use.
	CachedLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error)
}
