package impl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"nativoseo/config"
	deliverycontext "nativoseo/internal/delivery/context"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPostPageSize = 10
	maxPostPageSize     = 100
	hoursPerDay         = 24
)

type postService struct {
	locationRepo repository.ActiveLocationRepository
	postRepo     repository.PostRepository
	client       service.BusinessProfileClient
	credentials  *credentialResolver
	defaults     config.PostsConfig
	logger       *slog.Logger
	now          func() time.Time
}

// PostServiceParams holds dependencies for postService.
type PostServiceParams struct {
	fx.In

	Config       *config.Config
	LocationRepo repository.ActiveLocationRepository
	PostRepo     repository.PostRepository
	TokenRepo    repository.OAuthTokenRepository
	OAuth        service.GoogleOAuthService
	Client       service.BusinessProfileClient
	Logger       *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	defaults := config.PostsConfig{
		LanguageCode:     "es",
		DefaultCTAType:   entity.CTALearnMore,
		DefaultTopicType: entity.TopicTypeStandard,
	}
	if params.Config != nil && params.Config.Posts != nil {
		p := params.Config.Posts
		if p.LanguageCode != "" {
			defaults.LanguageCode = p.LanguageCode
		}
		if p.DefaultCTAType != "" {
			defaults.DefaultCTAType = p.DefaultCTAType
		}
		if p.DefaultTopicType != "" {
			defaults.DefaultTopicType = p.DefaultTopicType
		}
		defaults.DefaultCTAURL = p.DefaultCTAURL
	}

	return &postService{
		locationRepo: params.LocationRepo,
		postRepo:     params.PostRepo,
		client:       params.Client,
		credentials:  newCredentialResolver(params.TokenRepo, params.OAuth, params.Logger),
		defaults:     defaults,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// encodePageToken packs the upstream token of every location that has more posts.
func encodePageToken(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}

	raw, err := json.Marshal(tokens)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodePageToken(token string) (map[string]string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidPageToken
	}

	var tokens map[string]string
	if err := json.Unmarshal(raw, &tokens); err != nil || len(tokens) == 0 {
		return nil, domainerrors.ErrInvalidPageToken
	}

	return tokens, nil
}

type locationPosts struct {
	location  *entity.ActiveLocation
	page      *entity.LocalPostPage
	err       error
	nextToken string
}

// ListActivePosts lists posts of every active location. pageSize applies per location.
// A page token continues only the locations that had more posts. Location summaries
// describe the newest posts, so only the first page carries them.
func (srv *postService) ListActivePosts(ctx context.Context, userID uuid.UUID, pageSize int, pageToken string) (*usecase.ActivePostsOutput, error) {
	if pageSize <= 0 {
		pageSize = defaultPostPageSize
	}
	if pageSize > maxPostPageSize {
		pageSize = maxPostPageSize
	}

	var upstreamTokens map[string]string
	if pageToken != "" {
		tokens, err := decodePageToken(pageToken)
		if err != nil {
			return nil, err
		}
		upstreamTokens = tokens
	}

	active, err := srv.locationRepo.List(ctx, userID, 0, maxActiveListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active locations")
	}

	targets := make([]*entity.ActiveLocation, 0, len(active))
	for _, loc := range active {
		if upstreamTokens != nil {
			if _, ok := upstreamTokens[loc.LocationID]; !ok {
				continue
			}
		}
		targets = append(targets, loc)
	}

	output := &usecase.ActivePostsOutput{
		Posts:     []*entity.LocalPost{},
		Locations: []*usecase.LocationPostSummary{},
	}
	if len(targets) == 0 {
		return output, nil
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]locationPosts, len(targets))

	var group errgroup.Group
	for i, loc := range targets {
		group.Go(func() error {
			page, err := srv.client.ListLocalPosts(ctx, creds, loc.AccountID, loc.LocationID, pageSize, upstreamTokens[loc.LocationID])
			results[i] = locationPosts{location: loc, page: page, err: err}

			return nil
		})
	}
	_ = group.Wait()

	nextTokens := make(map[string]string)
	failed := 0
	now := srv.now()

	firstPage := upstreamTokens == nil

	for _, res := range results {
		summary := &usecase.LocationPostSummary{
			LocationID:   res.location.LocationID,
			LocationName: res.location.LocationName,
			AccountID:    res.location.AccountID,
		}
		if firstPage {
			output.Locations = append(output.Locations, summary)
		}

		if res.err != nil {
			failed++
			summary.Error = res.err.Error()
			srv.log(ctx).Warn("Failed to list posts of location",
				slog.String("locationID", res.location.LocationID),
				slog.Any("error", res.err),
			)

			continue
		}
		if res.page == nil {
			continue
		}

		var newest time.Time
		for _, post := range res.page.LocalPosts {
			post.LocationInfo = &entity.PostLocationInfo{
				LocationID:   res.location.LocationID,
				LocationName: res.location.LocationName,
				AccountID:    res.location.AccountID,
			}
			if created, ok := postTime(post); ok && created.After(newest) {
				newest = created
			}
			output.Posts = append(output.Posts, post)
		}

		summary.PostCount = len(res.page.LocalPosts)
		if !newest.IsZero() {
			days := int(now.Sub(newest).Hours() / hoursPerDay)
			if days < 0 {
				days = 0
			}
			summary.DaysSinceLastPost = &days
		}

		if res.page.NextPageToken != "" {
			nextTokens[res.location.LocationID] = res.page.NextPageToken
		}
	}

	if failed == len(results) {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails(results[0].err.Error())
	}

	sort.SliceStable(output.Posts, func(i, j int) bool {
		ti, _ := postTime(output.Posts[i])
		tj, _ := postTime(output.Posts[j])

		return ti.After(tj)
	})

	output.NextPageToken = encodePageToken(nextTokens)

	return output, nil
}

// postTime returns the create time of a post, falling back to its update time.
func postTime(post *entity.LocalPost) (time.Time, bool) {
	for _, value := range []string{post.CreateTime, post.UpdateTime} {
		if value == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// CreatePost publishes a post with the configured language, topic and call to action.
func (srv *postService) CreatePost(ctx context.Context, userID uuid.UUID, input *usecase.CreatePostInput) (*entity.LocalPost, error) {
	post := &entity.LocalPost{
		LanguageCode: srv.defaults.LanguageCode,
		Summary:      strings.TrimSpace(input.Summary),
		TopicType:    srv.defaults.DefaultTopicType,
	}
	if srv.defaults.DefaultCTAURL != "" {
		post.CallToAction = &entity.CallToAction{
			ActionType: srv.defaults.DefaultCTAType,
			URL:        srv.defaults.DefaultCTAURL,
		}
	}

	return srv.publish(ctx, userID, input, post)
}

// CreateExtendedPost publishes a post with caller supplied language, topic and call to action.
func (srv *postService) CreateExtendedPost(ctx context.Context, userID uuid.UUID, input *usecase.CreatePostInput) (*entity.LocalPost, error) {
	post := &entity.LocalPost{
		LanguageCode: firstNonEmpty(input.LanguageCode, srv.defaults.LanguageCode),
		Summary:      strings.TrimSpace(input.Summary),
		TopicType:    firstNonEmpty(strings.ToUpper(input.TopicType), srv.defaults.DefaultTopicType),
	}
	if ctaType := strings.ToUpper(strings.TrimSpace(input.CTAType)); ctaType != "" {
		post.CallToAction = &entity.CallToAction{
			ActionType: ctaType,
			URL:        strings.TrimSpace(input.CTAURL),
		}
	}

	return srv.publish(ctx, userID, input, post)
}

func (srv *postService) publish(ctx context.Context, userID uuid.UUID, input *usecase.CreatePostInput, post *entity.LocalPost) (*entity.LocalPost, error) {
	if post.Summary == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("summary is required")
	}

	locationID := entity.BareID(strings.TrimSpace(input.LocationID))
	if locationID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location_id is required")
	}

	location, err := srv.locationRepo.FindByLocation(ctx, userID, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrActiveLocationNotFound) {
			return nil, domainerrors.ErrLocationNotActive
		}

		return nil, errors.Wrap(err, "failed to find active location")
	}

	if mediaURL := strings.TrimSpace(input.MediaURL); mediaURL != "" {
		post.Media = []entity.MediaItem{{MediaFormat: entity.MediaFormatPhoto, SourceURL: mediaURL}}
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	created, err := srv.client.CreateLocalPost(ctx, creds, location.AccountID, location.LocationID, post)
	if err != nil {
		return nil, upstreamError(ctx, srv.logger, "create local post", err)
	}

	record := &entity.Post{
		UserID:     userID,
		AccountID:  location.AccountID,
		LocationID: location.LocationID,
		PostName:   created.Name,
		Summary:    created.Summary,
		MediaURL:   strings.TrimSpace(input.MediaURL),
		State:      firstNonEmpty(created.State, entity.PostStateLive),
		TopicType:  created.TopicType,
	}
	if err := srv.postRepo.Create(ctx, record); err != nil {
		// The post is already live upstream.
		srv.log(ctx).Error("Failed to record created post", slog.String("post", created.Name), slog.Any("error", err))
	}

	srv.log(ctx).Info("Created local post",
		slog.String("locationID", location.LocationID),
		slog.String("post", created.Name),
	)

	return created, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
