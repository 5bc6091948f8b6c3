// Package router defines how HTTP routes are registered for the API.
// Grouping mirrors the resource split: /api/users, /api/company and
// /api/locations, plus the unauthenticated auth endpoints.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/handler"
	"github.com/iliyamo/job-board-api/internal/middleware"
)

// Handlers bundles everything the router needs to wire.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Companies *handler.CompanyHandler
	Locations *handler.LocationHandler
}

// RegisterRoutes registers every endpoint on the provided Echo
// instance. jwtSecret feeds the authentication middleware; cache wraps
// the public read endpoints and may be nil to disable caching.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, cache echo.MiddlewareFunc) {
	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	jwt := middleware.JWTAuth(jwtSecret)

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Registration and login issue tokens; nothing here is protected.
	auth := e.Group("/api/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Users: reads are public, writes are restricted to the account
	// owner. RequireSelf compares the token subject with :id.
	users := e.Group("/api/users")
	users.GET("", h.Users.List, cache)
	users.GET("/:id", h.Users.Get, cache)
	users.PUT("/:id", h.Users.Update, jwt, middleware.RequireSelf("id"))
	users.DELETE("/:id", h.Users.Delete, jwt, middleware.RequireSelf("id"))
	users.POST("/:id/applications", h.Users.CreateApplication, jwt, middleware.RequireSelf("id"))

	// Company surface: public reads for browsing, authenticated writes
	// for the job lifecycle and application review.
	company := e.Group("/api/company")
	company.GET("/inf/:company_id", h.Companies.GetCompanyInfo, cache)
	company.GET("/:user_id", h.Companies.GetCompanyByOwner, cache)
	company.GET("/:user_id/jobs", h.Companies.ListJobs, cache)
	company.GET("/:user_id/applications", h.Companies.ListApplications, jwt, middleware.RequireSelf("user_id"))
	company.POST("/job", h.Companies.CreateJob, jwt)
	company.GET("/job/:id", h.Companies.GetJob, cache)
	company.PUT("/job/:id", h.Companies.UpdateJob, jwt)
	company.DELETE("/job/:id", h.Companies.DeleteJob, jwt)
	company.PUT("/application/:id", h.Companies.UpdateApplication, jwt)

	// Locations: the whole CRUD surface requires authentication.
	locations := e.Group("/api/locations", jwt)
	locations.POST("", h.Locations.Create)
	locations.GET("/:id", h.Locations.Get)
	locations.GET("/entity/:entity_type/:entity_id", h.Locations.GetByEntity)
	locations.PUT("/:id", h.Locations.Update)
	locations.DELETE("/:id", h.Locations.Delete)
}
