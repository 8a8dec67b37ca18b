package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupForecastRoutes(app *fiber.App) {
	forecastController := &controllers.ForecastController{}
	api := app.Group(config.MAIN_ROUTES+"/forecast", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(forecastController))

	api.Get("/grid", forecastController.GetForecastGrid)
	api.Post("/save", forecastController.SaveForecast)
	api.Post("/import", forecastController.ImportForecastFromExcel)
	api.Get("/variance", forecastController.GetVarianceReport)
	api.Get("/variance/export", forecastController.ExportVarianceReport)
}
