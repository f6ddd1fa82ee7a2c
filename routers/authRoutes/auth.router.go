package authRoutes

import (
	authControllers "bims/controllers/auth"
	"bims/middleware"
	authValidators "bims/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	// Login is the unauthenticated allowlist together with the health route.
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)

	authGroup.Get("/session", middleware.JWTMiddleware, authControllers.Session)
	authGroup.Post("/accounts/read", middleware.JWTMiddleware, authControllers.AccountList)
	authGroup.Post("/accounts", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), authValidators.CreateAccount(), authControllers.CreateAccount)
	authGroup.Post("/login/history", middleware.JWTMiddleware, authValidators.LoginHistoryList(), authControllers.LoginHistoryList)
}
