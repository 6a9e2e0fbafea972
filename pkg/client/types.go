package client

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// User is the session profile.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Token is a session token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// RegisterRequest creates a user.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is a Business Profile account.
type Account struct {
	Name        string `json:"name"`
	AccountName string `json:"accountName"`
	Type        string `json:"type,omitempty"`
	Role        string `json:"role,omitempty"`
}

// ID is the bare account id.
func (a Account) ID() string { return bareID(a.Name) }

// Location is a Business Profile location.
type Location struct {
	Name              string `json:"name"`
	Title             string `json:"title"`
	StorefrontAddress *struct {
		FormattedAddress string `json:"formattedAddress"`
	} `json:"storefrontAddress,omitempty"`
	PhoneNumbers *struct {
		PrimaryPhone string `json:"primaryPhone"`
	} `json:"phoneNumbers,omitempty"`
	WebsiteURI     string `json:"websiteUri,omitempty"`
	BusinessStatus string `json:"businessStatus,omitempty"`
}

// ID is the bare location id.
func (l Location) ID() string { return bareID(l.Name) }

// Address returns the formatted address or "".
func (l Location) Address() string {
	if l.StorefrontAddress == nil {
		return ""
	}

	return l.StorefrontAddress.FormattedAddress
}

// Phone returns the primary phone or "".
func (l Location) Phone() string {
	if l.PhoneNumbers == nil {
		return ""
	}

	return l.PhoneNumbers.PrimaryPhone
}

// ActiveLocation is one entry of the server side active set.
type ActiveLocation struct {
	ID           uuid.UUID `json:"id"`
	AccountID    string    `json:"account_id"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	ActivatedAt  time.Time `json:"activated_at"`
}

// Reviewer is the author of a review.
type Reviewer struct {
	DisplayName     string `json:"displayName,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// ReviewReply is the owner's answer.
type ReviewReply struct {
	Comment    string `json:"comment"`
	UpdateTime string `json:"updateTime,omitempty"`
}

// Review is a customer review.
type Review struct {
	Name        string       `json:"name,omitempty"`
	ReviewID    string       `json:"reviewId"`
	Reviewer    Reviewer     `json:"reviewer"`
	StarRating  string       `json:"starRating"`
	Comment     string       `json:"comment,omitempty"`
	CreateTime  string       `json:"createTime,omitempty"`
	UpdateTime  string       `json:"updateTime,omitempty"`
	ReviewReply *ReviewReply `json:"reviewReply,omitempty"`
}

var starRatings = map[string]int{"ONE": 1, "TWO": 2, "THREE": 3, "FOUR": 4, "FIVE": 5}

// Rating is the star rating as 1..5, 0 when unknown.
func (r Review) Rating() int { return starRatings[r.StarRating] }

// HasReply reports whether the review carries a reply object, even one with an empty comment.
func (r Review) HasReply() bool { return r.ReviewReply != nil }

// Replied reports whether the review carries a non empty reply.
func (r Review) Replied() bool { return r.ReviewReply != nil && r.ReviewReply.Comment != "" }

// Created parses CreateTime, the zero time when missing or malformed.
func (r Review) Created() time.Time {
	t, _ := time.Parse(time.RFC3339, r.CreateTime)

	return t
}

// ReviewPage is one page of reviews.
type ReviewPage struct {
	Reviews          []Review `json:"reviews"`
	AverageRating    float64  `json:"averageRating"`
	TotalReviewCount int      `json:"totalReviewCount"`
	NextPageToken    string   `json:"nextPageToken,omitempty"`
}

// ReviewStats summarises the reviews of a location.
type ReviewStats struct {
	TotalReviewCount int     `json:"totalReviewCount"`
	AverageRating    float64 `json:"averageRating"`
	PendingReviews   int     `json:"pendingReviews"`
}

// MediaItem is an image attached to a post.
type MediaItem struct {
	MediaFormat string `json:"mediaFormat,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	GoogleURL   string `json:"googleUrl,omitempty"`
}

// URL prefers the Google hosted copy.
func (m MediaItem) URL() string {
	if m.GoogleURL != "" {
		return m.GoogleURL
	}

	return m.SourceURL
}

// CallToAction is the button under a post.
type CallToAction struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

// PostLocationInfo identifies the location a post belongs to.
type PostLocationInfo struct {
	LocationID   string `json:"locationId"`
	LocationName string `json:"locationName"`
	AccountID    string `json:"accountId,omitempty"`
}

// Post is a local post. Media is always a list after decoding, even when the
// backend sent a single object or only a top level mediaUrl.
type Post struct {
	Name         string            `json:"name,omitempty"`
	Summary      string            `json:"summary"`
	Media        []MediaItem       `json:"media,omitempty"`
	MediaURL     string            `json:"mediaUrl,omitempty"`
	State        string            `json:"state,omitempty"`
	TopicType    string            `json:"topicType,omitempty"`
	LanguageCode string            `json:"languageCode,omitempty"`
	CreateTime   string            `json:"createTime,omitempty"`
	UpdateTime   string            `json:"updateTime,omitempty"`
	SearchURL    string            `json:"searchUrl,omitempty"`
	CallToAction *CallToAction     `json:"callToAction,omitempty"`
	LocationInfo *PostLocationInfo `json:"locationInfo,omitempty"`
}

// UnmarshalJSON accepts media as an object or a list.
func (p *Post) UnmarshalJSON(data []byte) error {
	type plain Post
	var raw struct {
		plain
		Media json.RawMessage `json:"media,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	*p = Post(raw.plain)
	p.Media = nil

	if len(raw.Media) > 0 && string(raw.Media) != "null" {
		if raw.Media[0] == '[' {
			if err := json.Unmarshal(raw.Media, &p.Media); err != nil {
				return errors.Wrap(err, "decode post media")
			}
		} else {
			var single MediaItem
			if err := json.Unmarshal(raw.Media, &single); err != nil {
				return errors.Wrap(err, "decode post media")
			}
			p.Media = []MediaItem{single}
		}
	}
	if p.Media == nil {
		p.Media = []MediaItem{}
	}

	return nil
}

// ImageURL returns the first media URL, falling back to MediaURL.
func (p Post) ImageURL() string {
	for _, m := range p.Media {
		if u := m.URL(); u != "" {
			return u
		}
	}

	return p.MediaURL
}

// LocationPostSummary is the posting activity of one active location.
type LocationPostSummary struct {
	LocationID        string `json:"locationId"`
	LocationName      string `json:"locationName"`
	AccountID         string `json:"accountId,omitempty"`
	PostCount         int    `json:"postCount"`
	DaysSinceLastPost *int   `json:"daysSinceLastPost"`
	Error             string `json:"error,omitempty"`
}

// PostsPage is one page of posts across active locations.
type PostsPage struct {
	Posts         []Post                `json:"posts"`
	Locations     []LocationPostSummary `json:"locations"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// NewPost is the input of post creation. Extended fields are ignored by CreatePost.
type NewPost struct {
	LocationID   string
	Summary      string
	MediaURL     string
	LanguageCode string
	TopicType    string
	CTAType      string
	CTAURL       string
}

// UploadedImage is where an uploaded image can be fetched from.
type UploadedImage struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

func bareID(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}

	return name
}
