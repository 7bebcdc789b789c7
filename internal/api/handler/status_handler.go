package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

// StatusHandler serves the liveness endpoints.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Root handles GET / — liveness string.
//
// @Summary      Liveness
// @Tags         status
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       / [get]
func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "NUJJUM Backend is running"})
}

// Hello handles GET /api/hello.
//
// @Summary      Static hello string
// @Tags         status
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/hello [get]
func (h *StatusHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Hello from the NUJJUM backend API!"})
}
