package usecase

import (
	"context"
	"io"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationPostSummary describes the posting activity of one active location.
type LocationPostSummary struct {
	LocationID        string `json:"locationId"`
	LocationName      string `json:"locationName"`
	AccountID         string `json:"accountId"`
	PostCount         int    `json:"postCount"`
	DaysSinceLastPost *int   `json:"daysSinceLastPost"`
	Error             string `json:"error,omitempty"`
}

// ActivePostsOutput is one page of posts across all active locations.
type ActivePostsOutput struct {
	Posts         []*entity.LocalPost    `json:"posts"`
	Locations     []*LocationPostSummary `json:"locations"`
	NextPageToken string                 `json:"nextPageToken,omitempty"`
}

// CreatePostInput describes a post. Extended posts use every field; simple posts only
// LocationID, Summary and MediaURL.
type CreatePostInput struct {
	LocationID   string
	Summary      string
	MediaURL     string
	LanguageCode string
	TopicType    string
	CTAType      string
	CTAURL       string
}

// PostUsecase lists and creates local posts of active locations.
type PostUsecase interface {
	ListActivePosts(ctx context.Context, userID uuid.UUID, pageSize int, pageToken string) (*ActivePostsOutput, error)
	CreatePost(ctx context.Context, userID uuid.UUID, input *CreatePostInput) (*entity.LocalPost, error)
	CreateExtendedPost(ctx context.Context, userID uuid.UUID, input *CreatePostInput) (*entity.LocalPost, error)
}

// UploadImageInput is one multipart file.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImageOutput tells the caller where the image can be fetched from.
type UploadImageOutput struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// MediaUsecase stores images for posts.
type MediaUsecase interface {
	UploadImage(ctx context.Context, userID uuid.UUID, input *UploadImageInput) (*UploadImageOutput, error)
}
