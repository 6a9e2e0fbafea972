package repository

import (
	"context"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessCacheRepository keeps a local copy of the user's Business Profile accounts and locations.
type BusinessCacheRepository interface {
	// FindAccounts returns the cached accounts of a user. An empty slice means nothing is cached.
	FindAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error)

	// SaveAccounts caches accounts, skipping any account already cached for the user.
	SaveAccounts(ctx context.Context, userID uuid.UUID, accounts []*entity.GoogleAccount) error

	// FindLocations returns the cached locations of one account.
	FindLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error)

	// SaveLocations caches the locations of one account, creating the account row if missing.
	SaveLocations(ctx context.Context, userID uuid.UUID, accountID string, locations []*entity.Location) error
}
