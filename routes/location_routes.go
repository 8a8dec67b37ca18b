package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRoutes(app *fiber.App) {
	locationController := &controllers.LocationController{}
	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(locationController))

	api.Post("/", locationController.CreateLocation)
	api.Get("/", locationController.GetAllLocations)
	api.Get("/:id", locationController.GetLocationByID)
	api.Put("/:id", locationController.UpdateLocation)
	api.Delete("/:id", locationController.DeleteLocation)
}

func SetupSectorRoutes(app *fiber.App) {
	sectorController := &controllers.SectorController{}
	api := app.Group(config.MAIN_ROUTES+"/sectors", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(sectorController))

	api.Post("/", sectorController.CreateSector)
	api.Get("/", sectorController.GetAllSectors)
	api.Get("/:id", sectorController.GetSectorByID)
	api.Put("/:id", sectorController.UpdateSector)
	api.Delete("/:id", sectorController.DeleteSector)
}
