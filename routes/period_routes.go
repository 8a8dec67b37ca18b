package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPeriodRoutes(app *fiber.App) {
	periodController := &controllers.PeriodController{}
	api := app.Group(config.MAIN_ROUTES+"/periods", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(periodController))

	api.Post("/", periodController.CreatePeriod)
	api.Get("/", periodController.GetAllPeriods)
	api.Get("/:id", periodController.GetPeriodByID)
	api.Put("/:id", periodController.UpdatePeriod)
	// Hanya admin yang boleh buka/tutup periode.
	api.Put("/:id/status", middleware.RequireAdmin, periodController.ToggleStatus)
}
