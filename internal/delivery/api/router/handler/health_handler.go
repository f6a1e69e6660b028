package handler

import (
	"net/http"

	"userapi/internal/delivery/api/response"
	"userapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	userUC usecase.UserUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(userUC usecase.UserUsecase) *HealthHandler {
	return &HealthHandler{userUC: userUC}
}

// HealthStatus is the body returned by the health endpoint
type HealthStatus struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{
		Status: "ok",
		Users:  h.userUC.CountUsers(c.Request().Context()),
	})
}
