package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/entity"
	"nativoseo/internal/domain/repository"
	mockRepo "nativoseo/internal/mocks/repository"
	mockSvc "nativoseo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     4,
			AccessTokenTTL: 30 * time.Minute,
		},
		BusinessProfile: &config.BusinessProfileConfig{
			ReviewStatsMaxPages: 5,
		},
		Posts: &config.PostsConfig{
			LanguageCode:     "es",
			DefaultCTAType:   entity.CTALearnMore,
			DefaultCTAURL:    "https://nativoseo.example/contacto",
			DefaultTopicType: entity.TopicTypeStandard,
		},
		Storage: &config.StorageConfig{
			MaxUploadBytes: 1024,
		},
	}
}

// expectTransaction runs the transaction callback against factory and returns its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// expectCredentials makes the stored token available without a refresh.
func expectCredentials(tokenRepo *mockRepo.MockOAuthTokenRepository, oauth *mockSvc.MockGoogleOAuthService, userID uuid.UUID) *entity.OAuthToken {
	token := &entity.OAuthToken{
		UserID:       userID,
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
		TokenType:    "Bearer",
	}

	tokenRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(token, nil)
	oauth.EXPECT().Refresh(mock.Anything, token).Return(token, false, nil)

	return token
}
