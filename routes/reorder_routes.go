package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReorderRoutes(app *fiber.App) {
	reorderController := &controllers.ReorderController{}
	api := app.Group(config.MAIN_ROUTES+"/reorder", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(reorderController))

	api.Get("/", reorderController.GetReorderAnalysis)
	api.Get("/export", reorderController.ExportReorderAnalysis)
}
