package handler

import (
	"net/http"

	"nativoseo/internal/delivery/api/response"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Usecase usecase.BusinessProfileUsecase
}

// AccountHandler lists Business Profile accounts and locations.
type AccountHandler struct {
	uc usecase.BusinessProfileUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{uc: params.Usecase}
}

// LiveAccounts returns the accounts as Google reports them now.
func (h *AccountHandler) LiveAccounts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	accounts, err := h.uc.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"accounts": newLiveAccounts(accounts)})
}

// LiveLocations returns the locations of one account as Google reports them now.
func (h *AccountHandler) LiveLocations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	locations, err := h.uc.ListLocations(c.Request().Context(), userID, c.Param("accountId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"locations": newLiveLocations(locations)})
}

// CachedAccounts returns the stored accounts of the caller.
func (h *AccountHandler) CachedAccounts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	accounts, err := h.uc.CachedAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGoogleAccountResponses(accounts))
}

// CachedLocations returns the stored locations of one account.
func (h *AccountHandler) CachedLocations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	locations, err := h.uc.CachedLocations(c.Request().Context(), userID, c.Param("accountId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLocationResponses(locations))
}
