package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMaintenanceRoutes(app *fiber.App) {
	maintenanceController := &controllers.MaintenanceController{}
	api := app.Group(config.MAIN_ROUTES+"/maintenance-plans", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(maintenanceController))

	api.Post("/", maintenanceController.CreatePlan)
	api.Get("/", maintenanceController.GetAllPlans)
	api.Get("/due", maintenanceController.GetDuePlans)
	api.Put("/:id", maintenanceController.UpdatePlan)
	api.Put("/:id/done", maintenanceController.MarkPlanDone)
	api.Delete("/:id", maintenanceController.DeletePlan)
}
