package service

import (
	"context"

	"nativoseo/internal/domain/entity"
)

// BusinessProfileClient talks to the Google Business Profile APIs with a user's credentials.
// Account, location and review ids may be given bare or as resource names.
type BusinessProfileClient interface {
	ListAccounts(ctx context.Context, creds *entity.OAuthToken) ([]*entity.GoogleAccount, error)
	ListLocations(ctx context.Context, creds *entity.OAuthToken, accountID string) ([]*entity.Location, error)
	ListReviews(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, pageSize int, pageToken string) (*entity.ReviewPage, error)
	ReplyToReview(ctx context.Context, creds *entity.OAuthToken, accountID, locationID, reviewID, comment string) (*entity.ReviewReply, error)
	ListLocalPosts(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, pageSize int, pageToken string) (*entity.LocalPostPage, error)
	CreateLocalPost(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, post *entity.LocalPost) (*entity.LocalPost, error)
}
