package learnerRoutes

import (
	learnerController "microcourses/controllers/learner"
	"microcourses/middleware"
	learnerValidator "microcourses/validators/learner"

	"github.com/gofiber/fiber/v2"
)

// SetupLearnerRoutes sets up enrollment, completion and progress routes
func SetupLearnerRoutes(app *fiber.App) {
	learnerGroup := app.Group("/learner", middleware.JWTMiddleware, middleware.RequireRole())

	learnerGroup.Post("/enroll/:courseId", learnerValidator.Enroll(), learnerController.Enroll)
	learnerGroup.Post("/complete/:lessonId", learnerValidator.Complete(), learnerController.Complete)
	learnerGroup.Get("/progress", learnerController.GetProgress)
	learnerGroup.Get("/certificates", learnerController.GetCertificates)
}
