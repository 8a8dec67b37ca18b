package routes

import (
	"wareflow-app/config"
	"wareflow-app/controllers"
	"wareflow-app/database"
	"wareflow-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupIssueRoutes(app *fiber.App) {
	issueController := &controllers.IssueController{}
	api := app.Group(config.MAIN_ROUTES+"/issues", middleware.AuthMiddleware)

	api.Use(database.InjectDBMiddleware(issueController))

	api.Post("/", issueController.CreateIssueRequest)
	api.Get("/", issueController.GetAllIssueRequests)
	api.Get("/:id", issueController.GetIssueRequestByID)
	api.Put("/:id/approve", issueController.ApproveIssueRequest)
	api.Put("/:id/reject", issueController.RejectIssueRequest)
	api.Put("/:id/post", issueController.PostIssueRequest)
}
