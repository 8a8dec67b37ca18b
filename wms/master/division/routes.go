package division

import (
	"wareflow-app/config"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDivisionRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/divisions", middleware.AuthMiddleware)

	divisionHandler := &DivisionHandler{}
	api.Use(database.InjectDBMiddleware(divisionHandler))

	api.Get("/", divisionHandler.GetAllDivisions)
	api.Post("/", divisionHandler.CreateDivision)
	api.Get("/:id", divisionHandler.GetDivisionByID)
	api.Put("/:id", divisionHandler.UpdateDivision)
	api.Delete("/:id", divisionHandler.DeleteDivision)
}
