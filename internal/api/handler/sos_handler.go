package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// SosHandler handles emergency request ingestion.
type SosHandler struct {
	service ports.SosService
}

func NewSosHandler(service ports.SosService) *SosHandler {
	return &SosHandler{service: service}
}

// Create handles POST /api/sos.
//
// @Summary      Log an emergency SOS request
// @Tags         sos
// @Accept       json
// @Produce      json
// @Param        body  body      createSosRequest  true  "SOS payload"
// @Success      201   {object}  createSosResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/sos [post]
func (h *SosHandler) Create(c echo.Context) error {
	var req createSosRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateSosInput{
		UserID:        req.UserID,
		Location:      req.Location,
		Notes:         req.Notes,
		EmergencyType: req.EmergencyType,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createSosResponse{
		ID:      result.ID,
		Status:  result.Status,
		Message: result.Message,
	})
}
