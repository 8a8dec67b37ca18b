package main

import (
	"fmt"
	"log"

	"wareflow-app/config"
	"wareflow-app/controllers/idgen"
	"wareflow-app/database"
	"wareflow-app/migration"
	"wareflow-app/routes"
	seed "wareflow-app/seeder"
	"wareflow-app/wms/master/division"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	seed.SeedUoms(db)
	seed.SeedAdminUser(db)
	seed.SeedLocations(db)
	seed.SeedSectors(db)
	seed.SeedCurrentPeriod(db)
	division.SeedDivision(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupItemRoutes(app)
	routes.SetupMachineRoutes(app)
	routes.SetupLocationRoutes(app)
	routes.SetupSectorRoutes(app)
	division.SetupDivisionRoutes(app)
	routes.SetupPeriodRoutes(app)
	routes.SetupBomRoutes(app)
	routes.SetupForecastRoutes(app)
	routes.SetupIssueRoutes(app)
	routes.SetupStockRoutes(app)
	routes.SetupReorderRoutes(app)
	routes.SetupWorkOrderRoutes(app)
	routes.SetupMaintenanceRoutes(app)
	routes.SetupBackupRoutes(app)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
