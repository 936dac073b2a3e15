package courseRoutes

import (
	catalogController "microcourses/controllers/catalog"
	"microcourses/middleware"
	courseValidator "microcourses/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Catalog browsing shows published courses only
	courseGroup.Get("/", courseValidator.CourseList(), catalogController.ListCourses)

	// Lesson view requires enrollment
	courseGroup.Get("/lessons/:lessonId", middleware.JWTMiddleware, middleware.RequireRole(), courseValidator.GetLesson(), catalogController.GetLesson)

	courseGroup.Get("/:id", courseValidator.GetCourseDetail(), catalogController.GetCourseDetails)
}
