package router // router defines how HTTP routes are registered for the API

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/veena-verse/bookshop-backend/internal/handler"
	"github.com/veena-verse/bookshop-backend/internal/middleware"
	"github.com/veena-verse/bookshop-backend/internal/model"
)

// RegisterRoutes registers routes that do not belong to the storefront
// or the admin area.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the admin session endpoints.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
// There is no register route: the only admin account is seeded at
// startup.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh) // rotates the refresh token
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic wires the unauthenticated storefront: catalog browse
// and detail, genre tabs, the link hub, and the book request form.  The
// request form is the only write a guest can perform, so it alone is
// rate limited.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	e.GET("/v1/books", p.GetBooks)
	e.GET("/v1/books/:id", p.GetBook)
	e.GET("/v1/genres", p.GetGenres)
	e.GET("/v1/links", p.GetLinks)

	e.POST("/v1/requests", p.CreateRequest,
		middleware.RateLimit(rdb, 5, time.Minute))
}

// RegisterAdmin wires the gated admin area under /v1/admin: dashboard
// stats, book CRUD with cover uploads, and request management.  Every
// route requires a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/stats", a.GetStats)

	// ---- Books ----
	g.GET("/books", a.ListBooks)
	g.POST("/books", a.CreateBook)
	g.PUT("/books/:id", a.UpdateBook)
	g.PATCH("/books/:id", a.UpdateBook) // alias for clients that use PATCH
	g.DELETE("/books/:id", a.DeleteBook)

	// ---- Requests ----
	g.GET("/requests", a.ListRequests)
	g.PATCH("/requests/:id", a.UpdateRequestStatus)
	g.DELETE("/requests/:id", a.DeleteRequest)
}
