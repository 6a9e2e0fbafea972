package handler

import (
	"net/http"

	"nativoseo/internal/delivery/api/response"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Usecase usecase.ActiveLocationUsecase
}

// LocationHandler manages the caller's active locations.
type LocationHandler struct {
	uc usecase.ActiveLocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{uc: params.Usecase}
}

type listActiveRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

// ListActive returns the active locations.
func (h *LocationHandler) ListActive(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req listActiveRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	locations, err := h.uc.List(c.Request().Context(), userID, req.Skip, req.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ActiveLocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, newActiveLocationResponse(l))
	}

	return response.Success(c, http.StatusOK, out)
}

type activateRequest struct {
	AccountID    string `json:"account_id" validate:"required"`
	LocationID   string `json:"location_id" validate:"required"`
	LocationName string `json:"location_name"`
}

// Activate marks a location active. Activating twice returns the existing entry.
func (h *LocationHandler) Activate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req activateRequest
	if err := bindBody(c, &req); err != nil {
		return errors.WithStack(err)
	}

	location, created, err := h.uc.Activate(c.Request().Context(), userID, &usecase.ActivateLocationInput{
		AccountID:    req.AccountID,
		LocationID:   req.LocationID,
		LocationName: req.LocationName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, newActiveLocationResponse(location))
}

// Deactivate removes a location from the active set.
func (h *LocationHandler) Deactivate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Request().Context(), userID, c.QueryParam("account_id"), c.Param("locationId")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
