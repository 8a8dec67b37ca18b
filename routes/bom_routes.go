package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBomRoutes(app *fiber.App) {
	bomController := &controllers.BomController{}
	api := app.Group(config.MAIN_ROUTES+"/bom", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(bomController))

	api.Post("/", bomController.CreateBomRecord)
	api.Get("/", bomController.GetAllBomRecords)
	api.Put("/:id", bomController.UpdateBomRecord)
	api.Delete("/:id", bomController.DeleteBomRecord)
}
