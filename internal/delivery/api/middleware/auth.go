package middleware

import (
	"strings"

	"nativoseo/internal/delivery/api/response"
	deliverycontext "nativoseo/internal/delivery/context"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware validates the session bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate rejects requests without a valid "Authorization: Bearer" token and
// stores the user id for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		unauthorized := func() error {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return unauthorized()
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return unauthorized()
		}

		deliverycontext.SetUserID(c, claims.UserID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", claims.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
