package contactRoutes

import (
	contactController "microcourses/controllers/contact"
	contactValidator "microcourses/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes sets up the public contact form
func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", contactValidator.Contact(), contactController.SubmitContact)
}
