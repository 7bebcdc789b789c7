package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/nujjum/accessibility-api/docs"
	"github.com/nujjum/accessibility-api/internal/api/handler"
	"github.com/nujjum/accessibility-api/internal/core/ports"
	"github.com/nujjum/accessibility-api/internal/core/service"
	redisdb "github.com/nujjum/accessibility-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// guard may be nil when Redis is unavailable; the SOS service then always
// creates a new document.
func NewRouter(store ports.DocumentStore, guard *redisdb.RecentSosGuard, dbURLSet, dbNameSet bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // the platform frontend is served from another origin
	e.Use(echoprometheus.NewMiddleware("nujjum"))

	// --- Dependencies ---
	var dedup service.SosDedup
	var pinger handler.GuardPinger
	if guard != nil {
		dedup = guard
		pinger = guard
	}

	profileHandler := handler.NewProfileHandler(service.NewProfileService(store, log))
	sosHandler := handler.NewSosHandler(service.NewSosService(store, dedup, log))
	contentHandler := handler.NewContentHandler(service.NewContentService())
	statusHandler := handler.NewStatusHandler()
	diagHandler := handler.NewDiagHandler(store, pinger, dbURLSet, dbNameSet)

	// --- Routes ---
	e.GET("/", statusHandler.Root)
	e.GET("/api/hello", statusHandler.Hello)
	e.GET("/test", diagHandler.Check)

	e.POST("/api/profile", profileHandler.Create)
	e.GET("/api/profile", profileHandler.List)
	e.POST("/api/sos", sosHandler.Create)

	e.GET("/api/services", contentHandler.Services)
	e.GET("/api/i18n/:lang", contentHandler.Translations)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
