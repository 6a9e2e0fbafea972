package impl

import (
	"context"
	"testing"
	"time"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	mockRepo "nativoseo/internal/mocks/repository"
	mockSvc "nativoseo/internal/mocks/service"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service      *postService
	locationRepo *mockRepo.MockActiveLocationRepository
	postRepo     *mockRepo.MockPostRepository
	tokenRepo    *mockRepo.MockOAuthTokenRepository
	oauth        *mockSvc.MockGoogleOAuthService
	client       *mockSvc.MockBusinessProfileClient
}

var postTestNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func createTestPostService(t *testing.T) postServiceFixtures {
	locationRepo := mockRepo.NewMockActiveLocationRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	tokenRepo := mockRepo.NewMockOAuthTokenRepository(t)
	oauth := mockSvc.NewMockGoogleOAuthService(t)
	client := mockSvc.NewMockBusinessProfileClient(t)

	srv, ok := NewPostService(PostServiceParams{
		Config:       newTestConfig(),
		LocationRepo: locationRepo,
		PostRepo:     postRepo,
		TokenRepo:    tokenRepo,
		OAuth:        oauth,
		Client:       client,
		Logger:       newDiscardLogger(),
	}).(*postService)
	require.True(t, ok)
	srv.now = func() time.Time { return postTestNow }

	return postServiceFixtures{
		service:      srv,
		locationRepo: locationRepo,
		postRepo:     postRepo,
		tokenRepo:    tokenRepo,
		oauth:        oauth,
		client:       client,
	}
}

func activeLocations(userID uuid.UUID) []*entity.ActiveLocation {
	return []*entity.ActiveLocation{
		{ID: uuid.New(), UserID: userID, AccountID: "1", LocationID: "10", LocationName: "Centro"},
		{ID: uuid.New(), UserID: userID, AccountID: "1", LocationID: "20", LocationName: "Norte"},
	}
}

func TestPostService_ListActivePosts_MergesLocations(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.locationRepo.EXPECT().List(ctx, userID, 0, maxActiveListLimit).Return(activeLocations(userID), nil)
	fx.client.EXPECT().ListLocalPosts(ctx, creds, "1", "10", defaultPostPageSize, "").Return(&entity.LocalPostPage{
		LocalPosts: []*entity.LocalPost{
			{Name: "p-old", Summary: "a", CreateTime: "2024-06-01T12:00:00Z"},
			{Name: "p-new", Summary: "b", CreateTime: "2024-06-20T12:00:00Z"},
		},
		NextPageToken: "next-10",
	}, nil)
	fx.client.EXPECT().ListLocalPosts(ctx, creds, "1", "20", defaultPostPageSize, "").Return(&entity.LocalPostPage{
		LocalPosts: []*entity.LocalPost{{Name: "p-mid", Summary: "c", CreateTime: "2024-06-10T12:00:00Z"}},
	}, nil)

	output, err := fx.service.ListActivePosts(ctx, userID, 0, "")

	require.NoError(t, err)
	require.Len(t, output.Posts, 3)
	assert.Equal(t, "p-new", output.Posts[0].Name)
	assert.Equal(t, "p-mid", output.Posts[1].Name)
	assert.Equal(t, "p-old", output.Posts[2].Name)
	assert.Equal(t, "Centro", output.Posts[0].LocationInfo.LocationName)

	require.Len(t, output.Locations, 2)
	assert.Equal(t, 2, output.Locations[0].PostCount)
	require.NotNil(t, output.Locations[0].DaysSinceLastPost)
	assert.Equal(t, 10, *output.Locations[0].DaysSinceLastPost)
	assert.Equal(t, 20, *output.Locations[1].DaysSinceLastPost)

	tokens, err := decodePageToken(output.NextPageToken)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"10": "next-10"}, tokens)
}

func TestPostService_ListActivePosts_ContinuesOnlyTokenLocations(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)
	token := encodePageToken(map[string]string{"20": "page-2"})

	fx.locationRepo.EXPECT().List(ctx, userID, 0, maxActiveListLimit).Return(activeLocations(userID), nil)
	fx.client.EXPECT().ListLocalPosts(ctx, creds, "1", "20", 5, "page-2").Return(&entity.LocalPostPage{
		LocalPosts: []*entity.LocalPost{{Name: "p-older", Summary: "d", CreateTime: "2024-05-01T12:00:00Z"}},
	}, nil)

	output, err := fx.service.ListActivePosts(ctx, userID, 5, token)

	require.NoError(t, err)
	require.Len(t, output.Posts, 1)
	assert.Equal(t, "Norte", output.Posts[0].LocationInfo.LocationName)
	// Counts from a continuation page would describe older posts only.
	assert.Empty(t, output.Locations)
	assert.Empty(t, output.NextPageToken)
}

func TestPostService_ListActivePosts_PartialFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.locationRepo.EXPECT().List(ctx, userID, 0, maxActiveListLimit).Return(activeLocations(userID), nil)
	fx.client.EXPECT().ListLocalPosts(ctx, creds, "1", "10", defaultPostPageSize, "").Return(nil, errors.New("403 forbidden"))
	fx.client.EXPECT().ListLocalPosts(ctx, creds, "1", "20", defaultPostPageSize, "").Return(&entity.LocalPostPage{
		LocalPosts: []*entity.LocalPost{{Name: "p", Summary: "x", UpdateTime: "2024-06-29T12:00:00Z"}},
	}, nil)

	output, err := fx.service.ListActivePosts(ctx, userID, 0, "")

	require.NoError(t, err)
	assert.Len(t, output.Posts, 1)
	assert.Contains(t, output.Locations[0].Error, "403")
	assert.Equal(t, 1, *output.Locations[1].DaysSinceLastPost)
}

func TestPostService_ListActivePosts_AllFail(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.locationRepo.EXPECT().List(ctx, userID, 0, maxActiveListLimit).Return(activeLocations(userID), nil)
	fx.client.EXPECT().
		ListLocalPosts(ctx, creds, "1", mock.Anything, defaultPostPageSize, "").
		Return(nil, errors.New("timeout"))

	_, err := fx.service.ListActivePosts(ctx, userID, 0, "")

	require.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestPostService_ListActivePosts_NoActiveLocations(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().List(ctx, userID, 0, maxActiveListLimit).Return(nil, nil)

	output, err := fx.service.ListActivePosts(ctx, userID, 0, "")

	require.NoError(t, err)
	assert.Empty(t, output.Posts)
	assert.Empty(t, output.Locations)
}

func TestPostService_ListActivePosts_InvalidToken(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.ListActivePosts(context.Background(), uuid.New(), 0, "%%%")

	require.ErrorIs(t, err, domainerrors.ErrInvalidPageToken)
}

func TestPostService_CreatePost_UsesDefaults(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	location := &entity.ActiveLocation{UserID: userID, AccountID: "1", LocationID: "10"}
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.locationRepo.EXPECT().FindByLocation(ctx, userID, "10").Return(location, nil)
	fx.client.EXPECT().
		CreateLocalPost(ctx, creds, "1", "10", mock.AnythingOfType("*entity.LocalPost")).
		RunAndReturn(func(_ context.Context, _ *entity.OAuthToken, _, _ string, post *entity.LocalPost) (*entity.LocalPost, error) {
			assert.Equal(t, "es", post.LanguageCode)
			assert.Equal(t, entity.TopicTypeStandard, post.TopicType)
			require.NotNil(t, post.CallToAction)
			assert.Equal(t, entity.CTALearnMore, post.CallToAction.ActionType)
			require.Len(t, post.Media, 1)
			assert.Equal(t, entity.MediaFormatPhoto, post.Media[0].MediaFormat)

			created := *post
			created.Name = "accounts/1/locations/10/localPosts/99"
			created.State = entity.PostStateLive

			return &created, nil
		})
	fx.postRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Post) bool {
			return p.UserID == userID && p.PostName == "accounts/1/locations/10/localPosts/99"
		})).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, userID, &usecase.CreatePostInput{
		LocationID: "locations/10",
		Summary:    "Nuevo menú de temporada",
		MediaURL:   "https://cdn.example/menu.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PostStateLive, post.State)
}

func TestPostService_CreateExtendedPost_WithoutCTA(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	location := &entity.ActiveLocation{UserID: userID, AccountID: "1", LocationID: "10"}
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.locationRepo.EXPECT().FindByLocation(ctx, userID, "10").Return(location, nil)
	fx.client.EXPECT().
		CreateLocalPost(ctx, creds, "1", "10", mock.MatchedBy(func(p *entity.LocalPost) bool {
			return p.CallToAction == nil && p.LanguageCode == "en" && p.TopicType == "OFFER" && p.Media == nil
		})).
		Return(&entity.LocalPost{Name: "lp", Summary: "Sale"}, nil)
	fx.postRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

	post, err := fx.service.CreateExtendedPost(ctx, userID, &usecase.CreatePostInput{
		LocationID:   "10",
		Summary:      "Sale",
		LanguageCode: "en",
		TopicType:    "offer",
	})

	require.NoError(t, err)
	assert.Equal(t, "lp", post.Name)
}

func TestPostService_CreatePost_InactiveLocation(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().FindByLocation(ctx, userID, "10").Return(nil, repository.ErrActiveLocationNotFound)

	_, err := fx.service.CreatePost(ctx, userID, &usecase.CreatePostInput{LocationID: "10", Summary: "hola"})

	require.ErrorIs(t, err, domainerrors.ErrLocationNotActive)
}

func TestPostService_CreatePost_EmptySummary(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{LocationID: "10", Summary: "  "})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
