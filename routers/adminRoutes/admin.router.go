package adminRoutes

import (
	adminController "microcourses/controllers/admin"
	"microcourses/middleware"
	"microcourses/models"
	adminValidator "microcourses/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the moderation workflow routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Creator application moderation
	adminGroup.Get("/creators/pending", adminController.GetPendingCreators)
	adminGroup.Patch("/creators/:userId/status", adminValidator.DecideCreator(), adminController.DecideCreator)

	// Course moderation
	adminGroup.Get("/courses/pending", adminController.GetPendingCourses)
	adminGroup.Patch("/courses/:courseId/status", adminValidator.ModerateCourse(), adminController.Moderate)

	// Elevated catalog view (no publication filter)
	adminGroup.Get("/courses/list", adminValidator.AdminList(), adminController.GetAllCourses)

	// Dashboard
	adminGroup.Get("/dashboard/stats", adminController.DashboardStats)
}
