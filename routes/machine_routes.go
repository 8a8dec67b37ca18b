package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMachineRoutes(app *fiber.App) {
	machineController := &controllers.MachineController{}
	api := app.Group(config.MAIN_ROUTES+"/machines", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(machineController))

	api.Post("/", machineController.CreateMachine)
	api.Get("/", machineController.GetAllMachines)
	api.Get("/:id", machineController.GetMachineByID)
	api.Put("/:id", machineController.UpdateMachine)
	api.Delete("/:id", machineController.DeleteMachine)
}
