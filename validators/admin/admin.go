package adminValidator

import (
	"strconv"
	"strings"

	"microcourses/middleware"
	"microcourses/models"

	"github.com/gofiber/fiber/v2"
)

func DecideCreator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("userId"))
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		decision := strings.ToUpper(strings.TrimSpace(reqData.Status))
		if decision != models.CreatorStatusApproved && decision != models.CreatorStatusRejected {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be APPROVED or REJECTED!",
			})
		}

		c.Locals("targetUserID", userID)
		c.Locals("validatedDecision", decision)
		return c.Next()
	}
}

func ModerateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		decision := strings.ToUpper(strings.TrimSpace(reqData.Status))
		if !models.IsModerationDecision(decision) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PUBLISHED or REJECTED!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedDecision", decision)
		return c.Next()
	}
}

func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
