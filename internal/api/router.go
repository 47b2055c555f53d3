package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/societyhub/society-api/docs"
	"github.com/societyhub/society-api/internal/api/handler"
	"github.com/societyhub/society-api/internal/api/middleware"
	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

// Deps collects everything the HTTP layer needs.
type Deps struct {
	Users         ports.UserService
	Roles         ports.RoleService
	Complaints    ports.ComplaintService
	Announcements ports.AnnouncementService
	Tokens        ports.TokenIssuer
	Denylist      ports.TokenDenylist
	Identities    ports.RoleResolver
	Health        map[string]handler.Pinger
	Logger        zerolog.Logger

	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(middleware.Metrics())

	// --- Handlers ---
	users := handler.NewUserHandler(d.Users)
	roles := handler.NewRoleHandler(d.Roles)
	complaints := handler.NewComplaintHandler(d.Complaints)
	announcements := handler.NewAnnouncementHandler(d.Announcements)
	health := handler.NewHealthHandler(d.Health)

	auth := middleware.Auth(d.Tokens, d.Denylist, d.Identities, d.Logger)
	limiter := middleware.RateLimit(d.RateLimitRPS, d.RateLimitBurst)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Users ---
	u := e.Group("/api/users")
	u.POST("/register", users.Register, limiter)
	u.POST("/login", users.Login, limiter)
	u.POST("/logout", users.Logout, auth)
	u.GET("/getUsers", users.ListUsers, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleWorker))
	u.PATCH("/updateProfile", users.UpdateProfile, auth)
	u.PATCH("/updateUserRole", users.UpdateUserRole, auth, adminOnly)
	u.GET("/:id", users.GetProfile, auth)

	// --- Roles ---
	r := e.Group("/api/roles", auth)
	r.GET("", roles.List)
	r.POST("", roles.Create, adminOnly)

	// --- Complaints ---
	c := e.Group("/api/complaints", auth)
	c.POST("", complaints.Create, middleware.RBAC(domain.RoleResident, domain.RoleAdmin))
	c.GET("", complaints.List)
	c.GET("/:id", complaints.Get)
	c.PATCH("/:id/assign", complaints.Assign, adminOnly)
	c.PATCH("/:id/status", complaints.UpdateStatus, middleware.RBAC(domain.RoleWorker, domain.RoleAdmin))
	c.DELETE("/:id", complaints.Delete)

	// --- Announcements ---
	a := e.Group("/api/announcements", auth)
	a.GET("", announcements.List)
	a.POST("", announcements.Create, adminOnly)
	a.DELETE("/:id", announcements.Delete, adminOnly)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
