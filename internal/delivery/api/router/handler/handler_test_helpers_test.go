package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "nativoseo/internal/delivery/api/middleware"
	"nativoseo/internal/delivery/api/validator"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/service"
	mockSvc "nativoseo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBearer = "session-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testServer is an echo instance with the production error handler, validator and
// auth middleware. Bearer testBearer authenticates as userID.
type testServer struct {
	e      *echo.Echo
	auth   echo.MiddlewareFunc
	userID uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(mock.Anything).RunAndReturn(func(token string) (*service.Claims, error) {
		if token != testBearer {
			return nil, domainerrors.ErrUnauthorized
		}

		return &service.Claims{UserID: userID, Type: "access"}, nil
	}).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	authMiddleware := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens})

	return &testServer{e: e, auth: authMiddleware.Authenticate, userID: userID}
}

func (s *testServer) do(t *testing.T, req *http.Request, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testBearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()

	return decodeBody[domainerrors.ErrorResponse](t, rec)
}
