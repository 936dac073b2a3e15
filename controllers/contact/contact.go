package contactController

import (
	"microcourses/database"
	"microcourses/middleware"
	"microcourses/models"
	"microcourses/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact stores a contact-form message and notifies the site owner.
// The message is persisted first so a mail failure loses nothing.
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	go utils.SendContactNotification(reqData.Name, reqData.Email, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", nil)
}
