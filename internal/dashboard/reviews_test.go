package dashboard

import (
	"context"
	"net/http"
	"testing"

	"nativoseo/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(id, stars, created string, replied bool) client.Review {
	r := client.Review{ReviewID: id, StarRating: stars, CreateTime: created}
	if replied {
		r.ReviewReply = &client.ReviewReply{Comment: "Gracias"}
	}

	return r
}

func reviewIDs(reviews []client.Review) []string {
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ReviewID)
	}

	return ids
}

func TestFilterReviews(t *testing.T) {
	blankReply := review("blank-reply", "THREE", "2026-01-02T10:00:00Z", false)
	blankReply.ReviewReply = &client.ReviewReply{UpdateTime: "2026-01-02T11:00:00Z"}

	reviews := []client.Review{
		review("five-replied", "FIVE", "2026-01-03T10:00:00Z", true),
		review("four", "FOUR", "2026-01-05T10:00:00Z", false),
		review("two", "TWO", "2026-01-04T10:00:00Z", false),
		review("five", "FIVE", "2026-01-01T10:00:00Z", false),
		blankReply,
	}

	tests := []struct {
		name   string
		filter ReviewFilter
		want   []string
	}{
		{
			name: "no filter sorts newest first",
			want: []string{"four", "two", "five-replied", "blank-reply", "five"},
		},
		{
			name:   "min rating one disables the filter",
			filter: ReviewFilter{MinRating: 1},
			want:   []string{"four", "two", "five-replied", "blank-reply", "five"},
		},
		{
			name:   "min rating four",
			filter: ReviewFilter{MinRating: 4},
			want:   []string{"four", "five-replied", "five"},
		},
		{
			name:   "min rating four and only unreplied",
			filter: ReviewFilter{MinRating: 4, OnlyUnreplied: true},
			want:   []string{"four", "five"},
		},
		{
			name:   "only unreplied",
			filter: ReviewFilter{OnlyUnreplied: true},
			want:   []string{"four", "two", "five"},
		},
		{
			name:   "reply object with empty comment counts as replied",
			filter: ReviewFilter{MinRating: 3, OnlyUnreplied: true},
			want:   []string{"four", "five"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reviewIDs(FilterReviews(reviews, tt.filter)))
		})
	}

	assert.Equal(t, "five-replied", reviews[0].ReviewID, "input must not be reordered")
}

func TestReviewsPage_InactiveLocationLoadsNothing(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))

	assert.True(t, page.Inactive)
	assert.Equal(t, msgLocationInactive, page.Notice.Text)
	assert.Zero(t, countCalls(h.backend.Calls(), "GET /test-reviews"))
}

func TestReviewsPage_FailedLoadShowsExamples(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")
	h.backend.Fail("GET /test-reviews", http.StatusServiceUnavailable)

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))

	assert.True(t, page.Fallback)
	assert.Equal(t, ReviewsFallbackBanner, page.Banner)
	assert.Len(t, page.Reviews, 3)
	assert.Equal(t, exampleStats(), page.Stats)
	assert.False(t, page.HasMore())

	require.NoError(t, page.Reply(context.Background(), "example-review-1", "Gracias"))
	assert.Equal(t, msgReplyExample, page.Notice.Text)
	assert.Zero(t, countCalls(h.backend.Calls(), "POST /test-reviews/reply"))
}

func TestReviewsPage_LoadMoreFailureKeepsList(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")
	h.backend.reviews = []client.Review{review("r-1", "FIVE", "2026-01-01T10:00:00Z", false)}
	h.backend.nextReviews = "page-2"

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))
	require.True(t, page.HasMore())

	h.backend.Fail("GET /test-reviews", http.StatusGatewayTimeout)
	require.Error(t, page.LoadMore(context.Background()))
	assert.Equal(t, []string{"r-1"}, reviewIDs(page.Reviews))
	assert.Equal(t, msgMoreReviewsFail, page.Notice.Text)
	assert.True(t, page.HasMore())

	h.backend.Recover("GET /test-reviews")
	require.NoError(t, page.LoadMore(context.Background()))
	assert.Equal(t, []string{"r-1", "r-more"}, reviewIDs(page.Reviews))
	assert.False(t, page.HasMore())
}

func TestReviewsPage_ReplyUpdatesReview(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")
	h.backend.reviews = []client.Review{review("r-1", "TWO", "2026-01-01T10:00:00Z", false)}

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))
	require.Equal(t, 1, page.Stats.PendingReviews)

	require.NoError(t, page.Reply(context.Background(), "r-1", "  Lo sentimos, mejoraremos.  "))

	require.True(t, page.Reviews[0].Replied())
	assert.Equal(t, "Lo sentimos, mejoraremos.", page.Reviews[0].ReviewReply.Comment)
	assert.Equal(t, 0, page.Stats.PendingReviews)
	assert.Equal(t, msgReplySent, page.Notice.Text)
}

func TestReviewsPage_ReplyRejectsBlankText(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")
	h.backend.reviews = []client.Review{review("r-1", "TWO", "2026-01-01T10:00:00Z", false)}

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Reply(context.Background(), "r-1", "   "))
	assert.Equal(t, msgReplyEmpty, page.Notice.Text)
	assert.Zero(t, countCalls(h.backend.Calls(), "POST /test-reviews/reply"))
}

func TestReviewsPage_ReplyFailureKeepsReview(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")
	h.backend.reviews = []client.Review{review("r-1", "TWO", "2026-01-01T10:00:00Z", false)}

	page := h.app.Reviews("acc-1", "loc-1")
	require.NoError(t, page.Load(context.Background()))

	h.backend.Fail("POST /test-reviews/reply", http.StatusBadGateway)
	require.Error(t, page.Reply(context.Background(), "r-1", "Gracias"))

	assert.False(t, page.Reviews[0].Replied())
	assert.Equal(t, msgReplyFailed, page.Notice.Text)
}
