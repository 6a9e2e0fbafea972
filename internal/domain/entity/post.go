package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PostStateLive = "LIVE"

	TopicTypeStandard = "STANDARD"
	CTALearnMore      = "LEARN_MORE"
	MediaFormatPhoto  = "PHOTO"
)

// MediaItem is an image attached to a local post.
type MediaItem struct {
	MediaFormat string `json:"mediaFormat,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	GoogleURL   string `json:"googleUrl,omitempty"`
}

// CallToAction is the button shown under a local post.
type CallToAction struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

// PostLocationInfo identifies the location a post was listed from.
type PostLocationInfo struct {
	LocationID   string `json:"locationId"`
	LocationName string `json:"locationName"`
	AccountID    string `json:"accountId"`
}

// LocalPost mirrors the v4 localPost resource.
type LocalPost struct {
	Name         string            `json:"name,omitempty"`
	LanguageCode string            `json:"languageCode,omitempty"`
	Summary      string            `json:"summary"`
	CallToAction *CallToAction     `json:"callToAction,omitempty"`
	Media        []MediaItem       `json:"media,omitempty"`
	TopicType    string            `json:"topicType,omitempty"`
	State        string            `json:"state,omitempty"`
	CreateTime   string            `json:"createTime,omitempty"`
	UpdateTime   string            `json:"updateTime,omitempty"`
	SearchURL    string            `json:"searchUrl,omitempty"`
	LocationInfo *PostLocationInfo `json:"locationInfo,omitempty"`
}

// LocalPostPage is one upstream page of posts for a single location.
type LocalPostPage struct {
	LocalPosts    []*LocalPost `json:"localPosts"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// Post records a post created through this service.
type Post struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AccountID  string
	LocationID string
	PostName   string // upstream resource name
	Summary    string
	MediaURL   string
	State      string
	TopicType  string
	CreatedAt  time.Time
}
