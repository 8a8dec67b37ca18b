package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupStockRoutes(app *fiber.App) {
	stockController := &controllers.StockController{}
	api := app.Group(config.MAIN_ROUTES+"/stock", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(stockController))

	api.Get("/balances", stockController.GetAllBalances)
	api.Get("/issued-summary", stockController.GetIssuedSummary)
	api.Post("/adjustments", stockController.CreateAdjustment)
	api.Get("/adjustments", stockController.GetAllAdjustments)
	api.Put("/adjustments/:id/approve", middleware.RequireAdmin, stockController.ApproveAdjustment)
	api.Put("/adjustments/:id/reject", middleware.RequireAdmin, stockController.RejectAdjustment)
}
