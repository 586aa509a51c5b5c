package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/api/handler"
	"github.com/movieflix/movieflix-api/internal/api/middleware"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// Dependencies carries the wired services the router composes.
type Dependencies struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Browse  ports.BrowseSession
	Creds   ports.CredentialStore
	KV      ports.KVStore
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	browseHandler := handler.NewBrowseHandler(deps.Browse, deps.Catalog)
	pageHandler := handler.NewPageHandler()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Public pages ---
	e.GET("/login", pageHandler.Login)
	e.GET("/signup", pageHandler.Signup)

	// --- Protected browse surface ---
	home := e.Group("/home", middleware.Guard(deps.Creds))
	home.GET("", browseHandler.Home)
	home.GET("/search", browseHandler.Search)
	home.POST("/search", browseHandler.Keystroke)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.KV)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Everything else funnels to /home; the guard bounces unauthenticated
	// visitors on to /login from there.
	e.Any("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/home")
	})

	return e
}
