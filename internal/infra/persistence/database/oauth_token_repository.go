package database

import (
	"context"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"
	"nativoseo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type oauthTokenRepository struct {
	db *gorm.DB
}

// NewOAuthTokenRepository is the constructor for oauthTokenRepository.
func NewOAuthTokenRepository(db *gorm.DB) repository.OAuthTokenRepository {
	return &oauthTokenRepository{db: db}
}

// FindByUserID returns the Google credentials stored for a user.
func (repo *oauthTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OAuthToken, error) {
	var tokenM model.OAuthTokenModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find oauth token")
	}

	return toOAuthTokenDomain(&tokenM), nil
}

// Upsert updates the user's row in place or inserts a new one.
func (repo *oauthTokenRepository) Upsert(ctx context.Context, token *entity.OAuthToken) error {
	db := repo.db.WithContext(ctx)

	var existing model.OAuthTokenModel
	err := db.Where("user_id = ?", token.UserID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		tokenM := fromOAuthTokenDomain(token)
		if err := db.Create(tokenM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth token")
		}
		token.ID = tokenM.ID
		token.CreatedAt = tokenM.CreatedAt
		token.UpdatedAt = tokenM.UpdatedAt

		return nil
	case err != nil:
		return domainerrors.NewDatabaseExecuteError(err, "failed to load oauth token")
	}

	existing.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		existing.RefreshToken = token.RefreshToken
	}
	if token.TokenType != "" {
		existing.TokenType = token.TokenType
	}
	existing.ExpiresAt = token.ExpiresAt
	if token.Scopes != "" {
		existing.Scopes = token.Scopes
	}

	if err := db.Save(&existing).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update oauth token")
	}

	*token = *toOAuthTokenDomain(&existing)

	return nil
}

func toOAuthTokenDomain(data *model.OAuthTokenModel) *entity.OAuthToken {
	return &entity.OAuthToken{
		ID:           data.ID,
		UserID:       data.UserID,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		TokenType:    data.TokenType,
		ExpiresAt:    data.ExpiresAt,
		Scopes:       data.Scopes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromOAuthTokenDomain(data *entity.OAuthToken) *model.OAuthTokenModel {
	tokenType := data.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &model.OAuthTokenModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		TokenType:    tokenType,
		ExpiresAt:    data.ExpiresAt,
		Scopes:       data.Scopes,
	}
}
