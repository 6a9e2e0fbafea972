// Package dashboard holds the operator dashboard: session handling, the route
// guard, active location synchronization and one page type per screen. Every page
// fetches, renders and optionally submits through API.
package dashboard

import (
	"context"
	"io"

	"nativoseo/pkg/client"
)

// API is the backend surface the dashboard talks to.
type API interface {
	Register(ctx context.Context, in client.RegisterRequest) (*client.User, error)
	Login(ctx context.Context, username, password string) (*client.Token, error)
	Me(ctx context.Context) (*client.User, error)
	GoogleAuthURL(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, accessToken, refreshToken string) error

	Accounts(ctx context.Context) ([]client.Account, error)
	Locations(ctx context.Context, accountID string) ([]client.Location, error)

	ActiveLocations(ctx context.Context) ([]client.ActiveLocation, error)
	ActivateLocation(ctx context.Context, accountID, locationID, locationName string) (*client.ActiveLocation, error)
	DeactivateLocation(ctx context.Context, accountID, locationID string) error

	Reviews(ctx context.Context, accountID, locationID string, pageSize int, pageToken string) (*client.ReviewPage, error)
	ReviewStats(ctx context.Context, accountID, locationID string) (*client.ReviewStats, error)
	ReplyToReview(ctx context.Context, accountID, locationID, reviewID, text string) (*client.ReviewReply, error)

	ActivePosts(ctx context.Context, pageSize int, pageToken string) (*client.PostsPage, error)
	CreatePost(ctx context.Context, in client.NewPost) (*client.Post, error)
	CreateExtendedPost(ctx context.Context, in client.NewPost) (*client.Post, error)
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*client.UploadedImage, error)
}

var _ API = (*client.Client)(nil)
