package creatorRoutes

import (
	creatorController "microcourses/controllers/creator"
	"microcourses/middleware"
	"microcourses/models"
	creatorValidator "microcourses/validators/creator"

	"github.com/gofiber/fiber/v2"
)

// SetupCreatorRoutes sets up creator application and authoring routes
func SetupCreatorRoutes(app *fiber.App) {
	creatorGroup := app.Group("/creator")

	// Any authenticated non-creator may apply
	creatorGroup.Post("/apply", middleware.JWTMiddleware, middleware.RequireRole(), creatorValidator.Apply(), creatorController.Apply)

	// Authoring requires the creator role
	creatorGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator), creatorController.Dashboard)
	creatorGroup.Post("/courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator), creatorValidator.CreateCourse(), creatorController.CreateCourse)
	creatorGroup.Post("/courses/:id/lessons", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator), creatorValidator.CreateLesson(), creatorController.CreateLesson)
	creatorGroup.Patch("/courses/:id/submit", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator), creatorValidator.SubmitCourse(), creatorController.Submit)
}
