package handler

import (
	"net/http"

	"nativoseo/internal/delivery/api/response"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	Usecase usecase.PostUsecase
}

// PostHandler lists and creates local posts.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{uc: params.Usecase}
}

type listPostsRequest struct {
	PageSize  int    `query:"page_size" validate:"gte=0"`
	PageToken string `query:"page_token"`
}

// ListActive returns posts across all active locations.
func (h *PostHandler) ListActive(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req listPostsRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.ListActivePosts(c.Request().Context(), userID, req.PageSize, req.PageToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out)
}

type createPostRequest struct {
	LocationID   string `query:"location_id" validate:"required"`
	Summary      string `query:"summary" validate:"required,max=1500"`
	MediaURL     string `query:"media_url" validate:"omitempty,url"`
	LanguageCode string `query:"language_code"`
	TopicType    string `query:"topic_type"`
	CTAType      string `query:"cta_type"`
	CTAURL       string `query:"cta_url" validate:"omitempty,url"`
}

func (r *createPostRequest) input() *usecase.CreatePostInput {
	return &usecase.CreatePostInput{
		LocationID:   r.LocationID,
		Summary:      r.Summary,
		MediaURL:     r.MediaURL,
		LanguageCode: r.LanguageCode,
		TopicType:    r.TopicType,
		CTAType:      r.CTAType,
		CTAURL:       r.CTAURL,
	}
}

// Create publishes a simple post with the configured defaults.
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
		LocationID: req.LocationID,
		Summary:    req.Summary,
		MediaURL:   req.MediaURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

// CreateExtended publishes a post with explicit language, topic and call to action.
func (h *PostHandler) CreateExtended(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreateExtendedPost(c.Request().Context(), userID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}
