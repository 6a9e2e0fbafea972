package handler

import (
	"net/http"

	"nativoseo/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root returns the service banner.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: "NativoSEO Backend"})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
