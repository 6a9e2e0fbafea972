package impl

import (
	"context"
	"testing"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	mockRepo "nativoseo/internal/mocks/repository"
	mockSvc "nativoseo/internal/mocks/service"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	tokenRepo *mockRepo.MockOAuthTokenRepository
	oauth     *mockSvc.MockGoogleOAuthService
	client    *mockSvc.MockBusinessProfileClient
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	tokenRepo := mockRepo.NewMockOAuthTokenRepository(t)
	oauth := mockSvc.NewMockGoogleOAuthService(t)
	client := mockSvc.NewMockBusinessProfileClient(t)

	return reviewServiceFixtures{
		service: NewReviewService(ReviewServiceParams{
			Config:    newTestConfig(),
			TokenRepo: tokenRepo,
			OAuth:     oauth,
			Client:    client,
			Logger:    newDiscardLogger(),
		}),
		tokenRepo: tokenRepo,
		oauth:     oauth,
		client:    client,
	}
}

func review(id, stars string, replied bool) *entity.Review {
	r := &entity.Review{ReviewID: id, StarRating: stars}
	if replied {
		r.ReviewReply = &entity.ReviewReply{Comment: "¡Gracias!"}
	}

	return r
}

func TestReviewService_ListReviews_DefaultPageSize(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListReviews(ctx, creds, "1", "7", defaultReviewPageSize, "").Return(&entity.ReviewPage{}, nil)

	page, err := fx.service.ListReviews(ctx, userID, &usecase.ListReviewsInput{AccountID: "1", LocationID: "7"})

	require.NoError(t, err)
	assert.NotNil(t, page.Reviews)
	assert.Empty(t, page.Reviews)
}

func TestReviewService_ListReviews_RequiresLocation(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.ListReviews(context.Background(), uuid.New(), &usecase.ListReviewsInput{AccountID: "1"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Stats_CountsPendingAcrossPages(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListReviews(ctx, creds, "1", "7", maxReviewPageSize, "").Return(&entity.ReviewPage{
		Reviews:          []*entity.Review{review("a", "FIVE", true), review("b", "THREE", false)},
		AverageRating:    4.2,
		TotalReviewCount: 30,
		NextPageToken:    "p2",
	}, nil)
	fx.client.EXPECT().ListReviews(ctx, creds, "1", "7", maxReviewPageSize, "p2").Return(&entity.ReviewPage{
		Reviews: []*entity.Review{review("c", "ONE", false)},
	}, nil)

	stats, err := fx.service.Stats(ctx, userID, "1", "7")

	require.NoError(t, err)
	assert.Equal(t, 30, stats.TotalReviewCount)
	assert.InDelta(t, 4.2, stats.AverageRating, 0.001)
	assert.Equal(t, 2, stats.PendingReviews)
}

func TestReviewService_Stats_ComputesMissingSummary(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListReviews(ctx, creds, "1", "7", maxReviewPageSize, "").Return(&entity.ReviewPage{
		Reviews: []*entity.Review{review("a", "FIVE", false), review("b", "FOUR", false)},
	}, nil)

	stats, err := fx.service.Stats(ctx, userID, "1", "7")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReviewCount)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.001)
	assert.Equal(t, 2, stats.PendingReviews)
}

func TestReviewService_Stats_StopsAtPageLimit(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().
		ListReviews(ctx, creds, "1", "7", maxReviewPageSize, "").
		Return(&entity.ReviewPage{Reviews: []*entity.Review{review("a", "TWO", false)}, NextPageToken: "more"}, nil).
		Once()
	fx.client.EXPECT().
		ListReviews(ctx, creds, "1", "7", maxReviewPageSize, "more").
		Return(&entity.ReviewPage{Reviews: []*entity.Review{review("b", "TWO", false)}, NextPageToken: "more"}, nil).
		Times(4)

	stats, err := fx.service.Stats(ctx, userID, "1", "7")

	require.NoError(t, err)
	assert.Equal(t, 5, stats.PendingReviews)
}

func TestReviewService_Reply(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().
		ReplyToReview(ctx, creds, "1", "7", "r1", "Gracias por su visita").
		Return(&entity.ReviewReply{Comment: "Gracias por su visita", UpdateTime: "2024-05-01T10:00:00Z"}, nil)

	reply, err := fx.service.Reply(ctx, userID, &usecase.ReplyReviewInput{
		AccountID:  "1",
		LocationID: "7",
		ReviewID:   "r1",
		Comment:    "  Gracias por su visita ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Gracias por su visita", reply.Comment)
}

func TestReviewService_Reply_Validation(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Reply(context.Background(), uuid.New(), &usecase.ReplyReviewInput{
		AccountID:  "1",
		LocationID: "7",
		ReviewID:   "r1",
		Comment:    "   ",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Reply_UpstreamFailure(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ReplyToReview(ctx, creds, "1", "7", "r1", "ok").Return(nil, errors.New("503"))

	_, err := fx.service.Reply(ctx, userID, &usecase.ReplyReviewInput{AccountID: "1", LocationID: "7", ReviewID: "r1", Comment: "ok"})

	require.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}
