package entity

// Reviewer is the author of a review.
type Reviewer struct {
	DisplayName     string `json:"displayName,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	IsAnonymous     bool   `json:"isAnonymous,omitempty"`
}

// ReviewReply is the owner's answer to a review.
type ReviewReply struct {
	Comment    string `json:"comment"`
	UpdateTime string `json:"updateTime,omitempty"`
}

// Review mirrors the v4 review resource. Timestamps stay as RFC 3339 strings.
type Review struct {
	Name        string       `json:"name,omitempty"`
	ReviewID    string       `json:"reviewId"`
	Reviewer    Reviewer     `json:"reviewer"`
	StarRating  string       `json:"starRating"` // ONE..FIVE
	Comment     string       `json:"comment,omitempty"`
	CreateTime  string       `json:"createTime,omitempty"`
	UpdateTime  string       `json:"updateTime,omitempty"`
	ReviewReply *ReviewReply `json:"reviewReply,omitempty"`
}

var starRatings = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// Rating converts StarRating to 1..5, 0 when unspecified.
func (r *Review) Rating() int {
	return starRatings[r.StarRating]
}

// ReviewPage is one page of reviews as returned by the upstream list call.
type ReviewPage struct {
	Reviews          []*Review `json:"reviews"`
	AverageRating    float64   `json:"averageRating"`
	TotalReviewCount int       `json:"totalReviewCount"`
	NextPageToken    string    `json:"nextPageToken,omitempty"`
}

// ReviewStats summarises the reviews of a location.
type ReviewStats struct {
	TotalReviewCount int     `json:"totalReviewCount"`
	AverageRating    float64 `json:"averageRating"`
	PendingReviews   int     `json:"pendingReviews"`
}
