package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/api/metrics"
	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// ContentHandler serves the static services catalog and localization tables.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Services handles GET /api/services.
//
// @Summary      Get the static services catalog
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.ServicesCatalog
// @Router       /api/services [get]
func (h *ContentHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Services())
}

// Translations handles GET /api/i18n/:lang.
//
// @Summary      Get localized UI strings
// @Tags         content
// @Produce      json
// @Param        lang  path      string  true  "Language tag; ar-prefixed tags resolve to Arabic, anything else to English"
// @Success      200   {object}  map[string]string
// @Router       /api/i18n/{lang} [get]
func (h *ContentHandler) Translations(c echo.Context) error {
	lang := c.Param("lang")
	metrics.TranslationsServedTotal.WithLabelValues(string(domain.NormalizeLang(lang))).Inc()
	return c.JSON(http.StatusOK, h.service.Translations(lang))
}
