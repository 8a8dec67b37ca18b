package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBackupRoutes(app *fiber.App) {
	backupController := &controllers.BackupController{}
	api := app.Group(config.MAIN_ROUTES+"/backup", middleware.AuthMiddleware, middleware.RequireAdmin)

	api.Use(database.InjectDBMiddleware(backupController))

	api.Get("/export", backupController.ExportBackup)
}
