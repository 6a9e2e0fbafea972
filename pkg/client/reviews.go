package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Reviews fetches one page of reviews. The first page uses ReviewsTimeout and
// follow-up pages the shorter ReviewsMoreTimeout.
func (c *Client) Reviews(ctx context.Context, accountID, locationID string, pageSize int, pageToken string) (*ReviewPage, error) {
	if pageSize <= 0 {
		pageSize = defaultReviewsPage
	}
	q := url.Values{
		"account_id":  {bareID(accountID)},
		"location_id": {bareID(locationID)},
		"page_size":   {strconv.Itoa(pageSize)},
	}
	timeout := ReviewsTimeout
	if pageToken != "" {
		q.Set("page_token", pageToken)
		timeout = ReviewsMoreTimeout
	}

	var page ReviewPage
	if err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/test-reviews",
		query:   q,
		timeout: timeout,
		noCache: true,
	}, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ReviewStats fetches the review summary of a location.
func (c *Client) ReviewStats(ctx context.Context, accountID, locationID string) (*ReviewStats, error) {
	q := url.Values{
		"account_id":  {bareID(accountID)},
		"location_id": {bareID(locationID)},
		"stats_only":  {"true"},
	}

	var stats ReviewStats
	if err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/test-reviews",
		query:   q,
		timeout: ReviewStatsTimeout,
		noCache: true,
	}, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// ReplyToReview answers a review.
func (c *Client) ReplyToReview(ctx context.Context, accountID, locationID, reviewID, text string) (*ReviewReply, error) {
	q := url.Values{
		"account_id":  {bareID(accountID)},
		"location_id": {bareID(locationID)},
		"review_id":   {bareID(reviewID)},
		"reply_text":  {text},
	}

	var reply ReviewReply
	if err := c.do(ctx, request{method: http.MethodPost, path: "/test-reviews/reply", query: q}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
