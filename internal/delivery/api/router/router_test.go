package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nativoseo/config"
	apimiddleware "nativoseo/internal/delivery/api/middleware"
	"nativoseo/internal/delivery/api/router/handler"
	"nativoseo/internal/delivery/api/validator"
	mockSvc "nativoseo/internal/mocks/service"
	mockUc "nativoseo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho registers every route over usecase mocks without expectations, so any
// call that reaches a usecase fails the test.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			UserUsecase:    mockUc.NewMockUserUsecase(t),
			ConnectUsecase: mockUc.NewMockGoogleConnectUsecase(t),
			Config:         &config.Config{},
			Logger:         logger,
		}),
		AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{Usecase: mockUc.NewMockBusinessProfileUsecase(t)}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{Usecase: mockUc.NewMockActiveLocationUsecase(t)}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{Usecase: mockUc.NewMockReviewUsecase(t)}),
		PostHandler:     handler.NewPostHandler(handler.PostHandlerParams{Usecase: mockUc.NewMockPostUsecase(t)}),
		MediaHandler:    handler.NewMediaHandler(handler.MediaHandlerParams{Usecase: mockUc.NewMockMediaUsecase(t)}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: mockSvc.NewMockTokenService(t),
		}),
	})
	r.RegisterRoutes(e)

	return e
}

func TestRouter_PublicRoutes(t *testing.T) {
	e := newTestEcho(t)

	for _, path := range []string{"/", "/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_ProtectedRoutesRequireBearer(t *testing.T) {
	e := newTestEcho(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/auth/login"},
		{http.MethodGet, "/save-token?access_token=a"},
		{http.MethodGet, "/test-accounts"},
		{http.MethodGet, "/test-locations/111"},
		{http.MethodGet, "/accounts/"},
		{http.MethodGet, "/accounts/111/locations"},
		{http.MethodGet, "/locations/active"},
		{http.MethodPost, "/locations/active"},
		{http.MethodDelete, "/locations/active/9"},
		{http.MethodGet, "/test-reviews?account_id=1&location_id=9"},
		{http.MethodPost, "/test-reviews/reply"},
		{http.MethodGet, "/active-posts"},
		{http.MethodPost, "/active-posts/create"},
		{http.MethodPost, "/active-posts/create-extended"},
		{http.MethodPost, "/upload-image"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestRouter_MalformedAuthorizationHeader(t *testing.T) {
	e := newTestEcho(t)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}
