package dashboard

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"nativoseo/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalizePosts(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	got := NormalizePosts([]client.Post{
		{Name: "a", State: "PROCESSING", CreateTime: "2026-10-01T00:00:00Z"},
		{Name: "b", UpdateTime: "2026-10-02T00:00:00Z"},
		{Name: "c"},
	}, now)

	require.Len(t, got, 3)
	for _, p := range got {
		assert.NotNil(t, p.Media, p.Name)
	}
	assert.Equal(t, "PROCESSING", got[0].State)
	assert.Equal(t, "LIVE", got[1].State)
	assert.Equal(t, "2026-10-01T00:00:00Z", got[0].CreateTime)
	assert.Equal(t, "2026-10-02T00:00:00Z", got[1].CreateTime)
	assert.Equal(t, now.Format(time.RFC3339), got[2].CreateTime)
}

func TestDaysSinceLastPost(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	posts := []client.Post{
		{CreateTime: "2026-10-09T12:00:00Z"},
		{CreateTime: "2026-10-14T12:00:00Z"},
	}

	tests := []struct {
		name  string
		locs  []client.LocationPostSummary
		posts []client.Post
		want  int
	}{
		{
			name: "minimum across locations",
			locs: []client.LocationPostSummary{
				{DaysSinceLastPost: intPtr(20)},
				{DaysSinceLastPost: nil},
				{DaysSinceLastPost: intPtr(7)},
			},
			posts: posts,
			want:  7,
		},
		{
			name:  "newest post without location data",
			locs:  []client.LocationPostSummary{{DaysSinceLastPost: nil}},
			posts: posts,
			want:  5,
		},
		{
			name: "nothing to go on",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysSinceLastPost(tt.locs, tt.posts, now))
		})
	}
}

func TestPostForm_CanSubmit(t *testing.T) {
	assert.True(t, PostForm{LocationID: "loc-1", Summary: "Hola"}.CanSubmit())
	assert.False(t, PostForm{LocationID: "loc-1", Summary: " \n\t"}.CanSubmit())
	assert.False(t, PostForm{LocationID: "loc-1"}.CanSubmit())
	assert.False(t, PostForm{Summary: "Hola"}.CanSubmit())
}

func TestPostsPage_IncompleteFormMakesNoRequest(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.Posts()

	_, err := page.Create(context.Background(), PostForm{LocationID: "loc-1", Summary: "   ", Image: strings.NewReader("png")})
	assert.ErrorIs(t, err, ErrIncompleteForm)

	_, err = page.Create(context.Background(), PostForm{Summary: "Hola"})
	assert.ErrorIs(t, err, ErrIncompleteForm)

	assert.Empty(t, h.backend.Calls())
	assert.Equal(t, msgPostIncomplete, page.Notice.Text)
}

func TestPostsPage_UploadsImageBeforeCreating(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.Posts()
	require.NoError(t, page.Load(context.Background()))

	post, err := page.Create(context.Background(), PostForm{
		LocationID:       "loc-1",
		Summary:          " Nuevo menú ",
		Image:            strings.NewReader("\x89PNG"),
		ImageName:        "menu.png",
		ImageContentType: "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"GET /active-posts", "POST /upload-image", "POST /active-posts/create"}, h.backend.Calls())
	require.Len(t, h.backend.created, 1)
	assert.Equal(t, "Nuevo menú", h.backend.created[0].query["summary"])
	assert.Equal(t, "https://cdn.example.com/menu.png", h.backend.created[0].query["media_url"])

	assert.Equal(t, "https://cdn.example.com/menu.png", post.ImageURL())
	assert.Equal(t, "LIVE", post.State)
	assert.Equal(t, post.Name, page.Posts[0].Name)
	assert.Equal(t, 0, page.DaysSinceLastPost)
	assert.Equal(t, msgPostCreated, page.Notice.Text)
}

func TestPostsPage_ExtendedFieldsUseExtendedEndpoint(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.Posts()
	require.NoError(t, page.Load(context.Background()))

	_, err := page.Create(context.Background(), PostForm{
		LocationID: "loc-1",
		Summary:    "Reserva ya",
		CTAType:    "BOOK",
		CTAURL:     "https://example.com/reservas",
	})
	require.NoError(t, err)

	require.Len(t, h.backend.created, 1)
	assert.Equal(t, "/active-posts/create-extended", h.backend.created[0].path)
	assert.Equal(t, "BOOK", h.backend.created[0].query["cta_type"])
	assert.Zero(t, h.backend.uploads)
}

func TestPostsPage_CreateFailureKeepsList(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.posts = []client.Post{{Name: "p-0", Summary: "Anterior", CreateTime: "2026-10-01T00:00:00Z"}}

	page := h.app.Posts()
	require.NoError(t, page.Load(context.Background()))

	h.backend.Fail("POST /active-posts/create", http.StatusForbidden)
	_, err := page.Create(context.Background(), PostForm{LocationID: "loc-1", Summary: "Hola"})
	require.Error(t, err)

	assert.Len(t, page.Posts, 1)
	assert.Equal(t, msgPostFailed+"fallo simulado", page.Notice.Text)
}

func TestPostsPage_LoadMoreFailureKeepsList(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.posts = []client.Post{{Name: "p-0", Summary: "Anterior", CreateTime: "2026-10-01T00:00:00Z"}}
	h.backend.nextPosts = "page-2"

	page := h.app.Posts()
	require.NoError(t, page.Load(context.Background()))
	require.Equal(t, "page-2", page.NextPageToken)

	h.backend.Fail("GET /active-posts", http.StatusGatewayTimeout)
	require.Error(t, page.LoadMore(context.Background()))
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "p-0", page.Posts[0].Name)
	assert.Equal(t, msgMorePostsFail, page.Notice.Text)
	assert.Equal(t, "page-2", page.NextPageToken)
	assert.False(t, page.Fallback)

	h.backend.Recover("GET /active-posts")
	require.NoError(t, page.LoadMore(context.Background()))
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "p-more", page.Posts[1].Name)
	assert.Empty(t, page.NextPageToken)
}

func TestPostsPage_FailedLoadShowsExamplesAndSimulatesCreate(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /active-posts", http.StatusInternalServerError)

	page := h.app.Posts()
	require.NoError(t, page.Load(context.Background()))

	assert.True(t, page.Fallback)
	assert.Equal(t, PostsFallbackBanner, page.Banner)
	require.Len(t, page.Locations, 1)
	assert.Equal(t, ExampleLocationID, page.Locations[0].LocationID)
	assert.Equal(t, ExampleLocationName, page.Locations[0].LocationName)
	assert.Len(t, page.Posts, 2)

	post, err := page.Create(context.Background(), PostForm{LocationID: ExampleLocationID, Summary: "Demo"})
	require.NoError(t, err)

	assert.Equal(t, ExampleLocationName, post.LocationInfo.LocationName)
	assert.Len(t, page.Posts, 3)
	assert.Equal(t, 0, page.DaysSinceLastPost)
	assert.Equal(t, 3, page.Locations[0].PostCount)
	assert.Equal(t, msgPostCreatedDemo, page.Notice.Text)
	assert.Equal(t, 1, countCalls(h.backend.Calls(), "GET /active-posts"))
	assert.Zero(t, countCalls(h.backend.Calls(), "POST"))
}
