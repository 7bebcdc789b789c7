package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for POD user profiles.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /api/profile.
//
// @Summary      Create a POD user accessibility profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      createProfileRequest  true  "Profile payload"
// @Success      201   {object}  createProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toCreateProfileInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createProfileResponse{
		ID:      result.ID,
		Message: result.Message,
	})
}

// List handles GET /api/profile?limit=N.
//
// @Summary      List stored POD user profiles
// @Tags         profiles
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of profiles returned (default 10)"
// @Success      200    {object}  listProfilesResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	result, err := h.service.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListProfilesResponse(result))
}
