package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nativoseo/internal/domain/entity"
	mockUc "nativoseo/internal/mocks/usecase"
	"nativoseo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewFixture(t *testing.T) (*testServer, *mockUc.MockReviewUsecase) {
	t.Helper()

	srv := newTestServer(t)
	uc := mockUc.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{Usecase: uc})

	srv.e.GET("/test-reviews", h.List, srv.auth)
	srv.e.POST("/test-reviews/reply", h.Reply, srv.auth)

	return srv, uc
}

func TestReviewHandler_List(t *testing.T) {
	t.Run("page", func(t *testing.T) {
		srv, uc := newReviewFixture(t)
		uc.EXPECT().ListReviews(mock.Anything, srv.userID, &usecase.ListReviewsInput{
			AccountID:  "111",
			LocationID: "9",
			PageSize:   5,
			PageToken:  "next",
		}).Return(&entity.ReviewPage{
			Reviews:          []*entity.Review{{ReviewID: "r1", StarRating: "FIVE"}},
			AverageRating:    4.5,
			TotalReviewCount: 12,
			NextPageToken:    "after",
		}, nil)

		rec := srv.do(t, httptest.NewRequest(http.MethodGet,
			"/test-reviews?account_id=111&location_id=9&page_size=5&page_token=next", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		page := decodeBody[entity.ReviewPage](t, rec)
		require.Len(t, page.Reviews, 1)
		assert.Equal(t, "r1", page.Reviews[0].ReviewID)
		assert.Equal(t, "after", page.NextPageToken)
	})

	t.Run("stats only", func(t *testing.T) {
		srv, uc := newReviewFixture(t)
		uc.EXPECT().Stats(mock.Anything, srv.userID, "111", "9").
			Return(&entity.ReviewStats{TotalReviewCount: 12, AverageRating: 4.5, PendingReviews: 3}, nil)

		rec := srv.do(t, httptest.NewRequest(http.MethodGet,
			"/test-reviews?account_id=111&location_id=9&stats_only=true", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalReviewCount":12,"averageRating":4.5,"pendingReviews":3}`, rec.Body.String())
	})

	t.Run("location is required", func(t *testing.T) {
		srv, _ := newReviewFixture(t)

		rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/test-reviews?account_id=111", nil), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReviewHandler_Reply(t *testing.T) {
	srv, uc := newReviewFixture(t)
	uc.EXPECT().Reply(mock.Anything, srv.userID, &usecase.ReplyReviewInput{
		AccountID:  "111",
		LocationID: "9",
		ReviewID:   "r1",
		Comment:    "¡Gracias!",
	}).Return(&entity.ReviewReply{Comment: "¡Gracias!", UpdateTime: "2024-06-01T10:00:00Z"}, nil)

	rec := srv.do(t, httptest.NewRequest(http.MethodPost,
		"/test-reviews/reply?account_id=111&location_id=9&review_id=r1&reply_text=%C2%A1Gracias%21", nil), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "¡Gracias!", decodeBody[entity.ReviewReply](t, rec).Comment)
}
