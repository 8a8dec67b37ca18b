package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {

	authController := &controllers.AuthController{}
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", controllers.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Use(database.InjectDBMiddleware(authController))
	apiAuth.Get("/logout", authController.Logout)
	apiAuth.Get("/isLoggedIn", authController.IsLoggedIn)
}
