package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	mockUc "nativoseo/internal/mocks/usecase"
	"nativoseo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*testServer, *mockUc.MockPostUsecase) {
	t.Helper()

	srv := newTestServer(t)
	uc := mockUc.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{Usecase: uc})

	srv.e.GET("/active-posts", h.ListActive, srv.auth)
	srv.e.POST("/active-posts/create", h.Create, srv.auth)
	srv.e.POST("/active-posts/create-extended", h.CreateExtended, srv.auth)

	return srv, uc
}

func TestPostHandler_ListActive(t *testing.T) {
	srv, uc := newPostFixture(t)
	days := 3
	uc.EXPECT().ListActivePosts(mock.Anything, srv.userID, 10, "tok").Return(&usecase.ActivePostsOutput{
		Posts: []*entity.LocalPost{{Name: "accounts/1/locations/9/localPosts/p1", Summary: "Oferta"}},
		Locations: []*usecase.LocationPostSummary{
			{LocationID: "9", LocationName: "Sol Centro", AccountID: "1", PostCount: 1, DaysSinceLastPost: &days},
		},
		NextPageToken: "more",
	}, nil)

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/active-posts?page_size=10&page_token=tok", nil), true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "more", body["nextPageToken"])
	locations := body["locations"].([]any)
	require.Len(t, locations, 1)
	assert.EqualValues(t, 3, locations[0].(map[string]any)["daysSinceLastPost"])
}

func TestPostHandler_Create(t *testing.T) {
	t.Run("simple post ignores extended fields", func(t *testing.T) {
		srv, uc := newPostFixture(t)
		uc.EXPECT().CreatePost(mock.Anything, srv.userID, &usecase.CreatePostInput{
			LocationID: "9",
			Summary:    "Pan recién hecho",
			MediaURL:   "https://img.example/pan.jpg",
		}).Return(&entity.LocalPost{Name: "p1", Summary: "Pan recién hecho", State: entity.PostStateLive}, nil)

		rec := srv.do(t, httptest.NewRequest(http.MethodPost,
			"/active-posts/create?location_id=9&summary=Pan+reci%C3%A9n+hecho&media_url=https://img.example/pan.jpg&cta_type=CALL", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "p1", decodeBody[entity.LocalPost](t, rec).Name)
	})

	t.Run("inactive location is forbidden", func(t *testing.T) {
		srv, uc := newPostFixture(t)
		uc.EXPECT().CreatePost(mock.Anything, srv.userID, mock.Anything).Return(nil, domainerrors.ErrLocationNotActive)

		rec := srv.do(t, httptest.NewRequest(http.MethodPost, "/active-posts/create?location_id=9&summary=Hola", nil), true)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "LOCATION_NOT_ACTIVE", decodeError(t, rec).Code)
	})

	t.Run("summary is required", func(t *testing.T) {
		srv, _ := newPostFixture(t)

		rec := srv.do(t, httptest.NewRequest(http.MethodPost, "/active-posts/create?location_id=9", nil), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostHandler_CreateExtended(t *testing.T) {
	srv, uc := newPostFixture(t)
	uc.EXPECT().CreateExtendedPost(mock.Anything, srv.userID, &usecase.CreatePostInput{
		LocationID:   "9",
		Summary:      "Evento",
		LanguageCode: "en",
		TopicType:    "EVENT",
		CTAType:      "BOOK",
		CTAURL:       "https://sol.example/reservas",
	}).Return(&entity.LocalPost{Name: "p2"}, nil)

	rec := srv.do(t, httptest.NewRequest(http.MethodPost,
		"/active-posts/create-extended?location_id=9&summary=Evento&language_code=en&topic_type=EVENT&cta_type=BOOK&cta_url=https://sol.example/reservas", nil), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p2", decodeBody[entity.LocalPost](t, rec).Name)
}
