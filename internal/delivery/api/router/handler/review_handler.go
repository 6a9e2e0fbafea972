package handler

import (
	"net/http"

	"nativoseo/internal/delivery/api/response"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	Usecase usecase.ReviewUsecase
}

// ReviewHandler lists and answers reviews.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{uc: params.Usecase}
}

type listReviewsRequest struct {
	AccountID  string `query:"account_id" validate:"required"`
	LocationID string `query:"location_id" validate:"required"`
	PageSize   int    `query:"page_size" validate:"gte=0"`
	PageToken  string `query:"page_token"`
	StatsOnly  bool   `query:"stats_only"`
}

// List returns one page of reviews, or only the stats when stats_only is set.
func (h *ReviewHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req listReviewsRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	if req.StatsOnly {
		stats, err := h.uc.Stats(ctx, userID, req.AccountID, req.LocationID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, stats)
	}

	page, err := h.uc.ListReviews(ctx, userID, &usecase.ListReviewsInput{
		AccountID:  req.AccountID,
		LocationID: req.LocationID,
		PageSize:   req.PageSize,
		PageToken:  req.PageToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

type replyRequest struct {
	AccountID  string `query:"account_id" validate:"required"`
	LocationID string `query:"location_id" validate:"required"`
	ReviewID   string `query:"review_id" validate:"required"`
	ReplyText  string `query:"reply_text" validate:"required"`
}

// Reply answers a review.
func (h *ReviewHandler) Reply(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req replyRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.Reply(c.Request().Context(), userID, &usecase.ReplyReviewInput{
		AccountID:  req.AccountID,
		LocationID: req.LocationID,
		ReviewID:   req.ReviewID,
		Comment:    req.ReplyText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reply)
}
