// Package businessprofile talks to the Google Business Profile APIs on behalf of a user.
// Accounts and locations go through the generated v1 clients; reviews and local posts
// only exist on the v4 REST surface and are called directly.
package businessprofile

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/entity"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	accountmanagement "google.golang.org/api/mybusinessaccountmanagement/v1"
	businessinformation "google.golang.org/api/mybusinessbusinessinformation/v1"
	"google.golang.org/api/option"
)

const (
	defaultV4BaseURL      = "https://mybusiness.googleapis.com/v4"
	defaultRequestTimeout = 30 * time.Second
	locationReadMask      = "name,title,storefrontAddress,phoneNumbers,websiteUri,openInfo"
	accountPageSize       = 20
	locationPageSize      = 100
)

// Client implements service.BusinessProfileClient.
type Client struct {
	httpClient                  *http.Client
	v4BaseURL                   string
	accountManagementEndpoint   string
	businessInformationEndpoint string
	logger                      *slog.Logger
}

var _ service.BusinessProfileClient = (*Client)(nil)

// NewClient builds a client from the businessProfile config section.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	bp := &config.BusinessProfileConfig{}
	if cfg != nil && cfg.BusinessProfile != nil {
		bp = cfg.BusinessProfile
	}

	timeout := bp.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	base := strings.TrimRight(bp.V4BaseURL, "/")
	if base == "" {
		base = defaultV4BaseURL
	}

	return &Client{
		httpClient:                  &http.Client{Timeout: timeout},
		v4BaseURL:                   base,
		accountManagementEndpoint:   bp.AccountManagementEndpoint,
		businessInformationEndpoint: bp.BusinessInformationEndpoint,
		logger:                      logger,
	}
}

// authorized returns an HTTP client that sends the user's access token.
func (c *Client) authorized(ctx context.Context, creds *entity.OAuthToken) (*http.Client, error) {
	if creds == nil || creds.AccessToken == "" {
		return nil, errors.New("missing google access token")
	}

	tokenType := creds.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.AccessToken,
		TokenType:   tokenType,
	}))
	client.Timeout = c.httpClient.Timeout

	return client, nil
}

func (c *Client) options(httpClient *http.Client, endpoint string) []option.ClientOption {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	return opts
}

// ListAccounts returns every account the user can manage.
func (c *Client) ListAccounts(ctx context.Context, creds *entity.OAuthToken) ([]*entity.GoogleAccount, error) {
	httpClient, err := c.authorized(ctx, creds)
	if err != nil {
		return nil, err
	}

	svc, err := accountmanagement.NewService(ctx, c.options(httpClient, c.accountManagementEndpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account management client")
	}

	accounts := make([]*entity.GoogleAccount, 0)
	err = svc.Accounts.List().PageSize(accountPageSize).Pages(ctx, func(resp *accountmanagement.ListAccountsResponse) error {
		for _, acct := range resp.Accounts {
			accounts = append(accounts, &entity.GoogleAccount{
				Name:        acct.Name,
				AccountID:   entity.BareID(acct.Name),
				AccountName: acct.AccountName,
				Type:        acct.Type,
				Role:        acct.Role,
			})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// ListLocations returns every location of an account.
func (c *Client) ListLocations(ctx context.Context, creds *entity.OAuthToken, accountID string) ([]*entity.Location, error) {
	httpClient, err := c.authorized(ctx, creds)
	if err != nil {
		return nil, err
	}

	svc, err := businessinformation.NewService(ctx, c.options(httpClient, c.businessInformationEndpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create business information client")
	}

	locations := make([]*entity.Location, 0)
	call := svc.Accounts.Locations.List(entity.AccountResource(accountID)).
		ReadMask(locationReadMask).
		PageSize(locationPageSize)
	err = call.Pages(ctx, func(resp *businessinformation.ListLocationsResponse) error {
		for _, loc := range resp.Locations {
			locations = append(locations, toLocation(loc))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list locations of account %s", accountID)
	}

	return locations, nil
}

func toLocation(loc *businessinformation.Location) *entity.Location {
	out := &entity.Location{
		Name:       loc.Name,
		LocationID: entity.BareID(loc.Name),
		Title:      loc.Title,
		Website:    loc.WebsiteUri,
	}

	if addr := loc.StorefrontAddress; addr != nil {
		parts := append([]string{}, addr.AddressLines...)
		for _, p := range []string{addr.Locality, addr.AdministrativeArea, addr.PostalCode} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		out.Address = strings.Join(parts, ", ")
	}
	if loc.PhoneNumbers != nil {
		out.Phone = loc.PhoneNumbers.PrimaryPhone
	}
	if loc.OpenInfo != nil {
		out.Status = loc.OpenInfo.Status
	}

	return out
}

func (c *Client) locationURL(accountID, locationID string, parts ...string) string {
	segments := []string{
		c.v4BaseURL,
		entity.AccountResource(entity.BareID(accountID)),
		entity.LocationResource(entity.BareID(locationID)),
	}
	for _, p := range parts {
		segments = append(segments, url.PathEscape(p))
	}

	return strings.Join(segments, "/")
}

func pageQuery(pageSize int, pageToken string) url.Values {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	return query
}

// ListReviews returns one page of reviews together with the location's rating summary.
func (c *Client) ListReviews(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, pageSize int, pageToken string) (*entity.ReviewPage, error) {
	endpoint := c.locationURL(accountID, locationID, "reviews") + "?" + pageQuery(pageSize, pageToken).Encode()

	var page entity.ReviewPage
	if err := c.doJSON(ctx, creds, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &page, nil
}

// ReplyToReview creates or replaces the owner's reply.
func (c *Client) ReplyToReview(ctx context.Context, creds *entity.OAuthToken, accountID, locationID, reviewID, comment string) (*entity.ReviewReply, error) {
	endpoint := c.locationURL(accountID, locationID, "reviews", entity.BareID(reviewID), "reply")

	var reply entity.ReviewReply
	if err := c.doJSON(ctx, creds, http.MethodPut, endpoint, &entity.ReviewReply{Comment: comment}, &reply); err != nil {
		return nil, errors.Wrap(err, "failed to reply to review")
	}
	if reply.Comment == "" {
		reply.Comment = comment
	}

	return &reply, nil
}

// ListLocalPosts returns one page of posts of a location.
func (c *Client) ListLocalPosts(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, pageSize int, pageToken string) (*entity.LocalPostPage, error) {
	endpoint := c.locationURL(accountID, locationID, "localPosts") + "?" + pageQuery(pageSize, pageToken).Encode()

	var page entity.LocalPostPage
	if err := c.doJSON(ctx, creds, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list local posts")
	}

	return &page, nil
}

// CreateLocalPost publishes a post.
func (c *Client) CreateLocalPost(ctx context.Context, creds *entity.OAuthToken, accountID, locationID string, post *entity.LocalPost) (*entity.LocalPost, error) {
	endpoint := c.locationURL(accountID, locationID, "localPosts")

	var created entity.LocalPost
	if err := c.doJSON(ctx, creds, http.MethodPost, endpoint, post, &created); err != nil {
		return nil, errors.Wrap(err, "failed to create local post")
	}

	return &created, nil
}

func (c *Client) doJSON(ctx context.Context, creds *entity.OAuthToken, method, endpoint string, body, out any) error {
	httpClient, err := c.authorized(ctx, creds)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Business Profile v4 call",
		slog.String("method", method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if err := googleapi.CheckResponse(resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "failed to decode %s response", req.URL.Path)
	}

	return nil
}
