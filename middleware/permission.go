package middleware

import (
	"errors"

	"microcourses/database"
	"microcourses/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that loads the authenticated user and
// checks role membership. The user record is stored in Locals so handlers
// do not fetch it again. With no roles given, any authenticated user passes.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
			}
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireRole.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}

// DomainErrorResponse maps a domain error to its HTTP response. Anything
// outside the taxonomy is reported as an internal failure.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, models.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to perform this action!", nil)
	case errors.Is(err, models.ErrInvalidState):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Operation not allowed in the current state!", nil)
	case errors.Is(err, models.ErrDuplicateOrder):
		return JsonResponse(c, fiber.StatusConflict, false, "Lesson order must be unique within course!", nil)
	case errors.Is(err, models.ErrAlreadyEnrolled):
		return JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	case errors.Is(err, models.ErrAlreadyCreator):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Already a creator!", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
