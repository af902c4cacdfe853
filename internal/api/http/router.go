package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/http/handlers"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
	PostOwner      auth.OwnerLookup
}

// RegisterRoutes wires HTTP routes. Each protected route declares its
// allowed-roles set here; my-posts routes additionally bind the post
// ownership lookup.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/registration", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	anyRole := []domain.Role{domain.RoleAdmin, domain.RoleUser}

	posts := app.Group("/posts", cfg.AuthMiddleware.Handle)
	posts.Get("/", auth.RequireRoles(anyRole...), cfg.Posts.List)
	posts.Get("/my-posts", auth.RequireRoles(anyRole...), cfg.Posts.ListMine)
	posts.Get("/:id", auth.RequireRoles(anyRole...), cfg.Posts.Get)
	posts.Post("/", auth.RequireRoles(anyRole...), cfg.Posts.Create)
	posts.Post("/my-posts/:id", auth.RequireOwnership(cfg.PostOwner, anyRole...), cfg.Posts.Update)
	posts.Post("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Posts.Update)
	posts.Delete("/my-posts/:id", auth.RequireOwnership(cfg.PostOwner, anyRole...), cfg.Posts.Delete)
	posts.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Posts.Delete)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", auth.RequireRoles(domain.RoleAdmin), cfg.Users.List)
	users.Get("/me", auth.RequireRoles(anyRole...), cfg.Users.Me)
}
