package handler

import (
	"log/slog"

	deliverycontext "nativoseo/internal/delivery/context"
	domainerrors "nativoseo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindQuery binds and validates query parameters for any method; echo's default
// binder only reads the query string for GET, HEAD and DELETE.
func bindQuery(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("parámetros de consulta inválidos")
	}

	return validate(c, req)
}

// bindBody binds and validates the request body.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("cuerpo de la petición inválido")
	}

	return validate(c, req)
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.UserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
}
