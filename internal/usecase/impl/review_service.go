package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"nativoseo/config"
	deliverycontext "nativoseo/internal/delivery/context"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultReviewPageSize = 5
	maxReviewPageSize     = 50
	defaultStatsMaxPages  = 5
)

type reviewService struct {
	client       service.BusinessProfileClient
	credentials  *credentialResolver
	statsMaxPage int
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService.
type ReviewServiceParams struct {
	fx.In

	Config    *config.Config
	TokenRepo repository.OAuthTokenRepository
	OAuth     service.GoogleOAuthService
	Client    service.BusinessProfileClient
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	maxPages := defaultStatsMaxPages
	if params.Config != nil && params.Config.BusinessProfile != nil && params.Config.BusinessProfile.ReviewStatsMaxPages > 0 {
		maxPages = params.Config.BusinessProfile.ReviewStatsMaxPages
	}

	return &reviewService{
		client:       params.Client,
		credentials:  newCredentialResolver(params.TokenRepo, params.OAuth, params.Logger),
		statsMaxPage: maxPages,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateLocationRef(accountID, locationID string) error {
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(locationID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("account_id and location_id are required")
	}

	return nil
}

func (srv *reviewService) ListReviews(ctx context.Context, userID uuid.UUID, input *usecase.ListReviewsInput) (*entity.ReviewPage, error) {
	if err := validateLocationRef(input.AccountID, input.LocationID); err != nil {
		return nil, err
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultReviewPageSize
	}
	if pageSize > maxReviewPageSize {
		pageSize = maxReviewPageSize
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	page, err := srv.client.ListReviews(ctx, creds, input.AccountID, input.LocationID, pageSize, input.PageToken)
	if err != nil {
		return nil, upstreamError(ctx, srv.logger, "list reviews", err)
	}

	if page.Reviews == nil {
		page.Reviews = []*entity.Review{}
	}

	return page, nil
}

// Stats takes the total and average from the upstream summary and counts pending reviews
// over at most statsMaxPage pages.
func (srv *reviewService) Stats(ctx context.Context, userID uuid.UUID, accountID, locationID string) (*entity.ReviewStats, error) {
	if err := validateLocationRef(accountID, locationID); err != nil {
		return nil, err
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		stats     entity.ReviewStats
		scanned   int
		ratingSum int
		pageToken string
	)

	for pageNum := 0; pageNum < srv.statsMaxPage; pageNum++ {
		page, err := srv.client.ListReviews(ctx, creds, accountID, locationID, maxReviewPageSize, pageToken)
		if err != nil {
			return nil, upstreamError(ctx, srv.logger, "review stats", err)
		}

		if pageNum == 0 {
			stats.TotalReviewCount = page.TotalReviewCount
			stats.AverageRating = page.AverageRating
		}

		for _, review := range page.Reviews {
			scanned++
			ratingSum += review.Rating()
			if review.ReviewReply == nil || strings.TrimSpace(review.ReviewReply.Comment) == "" {
				stats.PendingReviews++
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if stats.TotalReviewCount == 0 {
		stats.TotalReviewCount = scanned
	}
	if stats.AverageRating == 0 && scanned > 0 {
		stats.AverageRating = math.Round(float64(ratingSum)/float64(scanned)*10) / 10
	}

	srv.log(ctx).Debug("Computed review stats",
		slog.String("locationID", locationID),
		slog.Int("scanned", scanned),
		slog.Int("pending", stats.PendingReviews),
	)

	return &stats, nil
}

func (srv *reviewService) Reply(ctx context.Context, userID uuid.UUID, input *usecase.ReplyReviewInput) (*entity.ReviewReply, error) {
	if err := validateLocationRef(input.AccountID, input.LocationID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ReviewID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review_id is required")
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reply_text is required")
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply, err := srv.client.ReplyToReview(ctx, creds, input.AccountID, input.LocationID, input.ReviewID, comment)
	if err != nil {
		return nil, upstreamError(ctx, srv.logger, "reply to review", err)
	}

	srv.log(ctx).Info("Replied to review", slog.String("reviewID", input.ReviewID))

	return reply, nil
}
