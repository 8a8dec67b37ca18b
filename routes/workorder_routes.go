package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkOrderRoutes(app *fiber.App) {
	workOrderController := &controllers.WorkOrderController{}
	api := app.Group(config.MAIN_ROUTES+"/work-orders", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(workOrderController))

	api.Post("/", workOrderController.CreateWorkOrder)
	api.Get("/", workOrderController.GetAllWorkOrders)
	api.Get("/:id", workOrderController.GetWorkOrderByID)
	api.Put("/:id/start", workOrderController.StartWorkOrder)
	api.Put("/:id/complete", workOrderController.CompleteWorkOrder)
}
