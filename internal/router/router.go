package router

import (
	"account-console/internal/cache"
	"account-console/internal/database"
	"account-console/internal/handler"
	"account-console/internal/handler/auth"
	"account-console/internal/handler/console"
	"account-console/internal/handler/users"
	"account-console/internal/middleware"
	"account-console/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers the API and console routes.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cl console.Submitter, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// Account creation endpoint the console submits to.
	api.PUT("/user", users.CreateAccountHandler(db, rdb, wp))

	// Admin-only user administration.
	apiUsers := api.Group("/users", middleware.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db, rdb))
	apiUsers.GET("/:user_id", users.GetUserHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db, rdb))

	// Console pages.
	e.GET("/users", console.UsersPageHandler(db))
	e.GET("/users/new", console.NewAccountPageHandler())
	e.POST("/users/new", console.CreateAccountHandler(cl))
	e.POST("/users/new/dismiss", console.DismissBannerHandler())
}
