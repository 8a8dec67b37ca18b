package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRoutes(app *fiber.App) {
	itemController := &controllers.ItemController{}
	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(itemController))

	api.Post("/", itemController.CreateItem)
	api.Get("/", itemController.GetAllItems)
	api.Get("/:id", itemController.GetItemByID)
	api.Put("/:id", itemController.UpdateItem)
	api.Delete("/:id", itemController.DeleteItem)
}
