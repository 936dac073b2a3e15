package adminController

import (
	"errors"

	"microcourses/database"
	"microcourses/middleware"
	"microcourses/models"
	"microcourses/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DecideCreatorApplication resolves a pending creator application. Approval
// flips the role to creator in the same transaction, so status and role can
// never diverge.
func DecideCreatorApplication(db *gorm.DB, actor *models.User, targetUserID uint, decision string) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}
	if decision != models.CreatorStatusApproved && decision != models.CreatorStatusRejected {
		return nil, models.ErrInvalidState
	}

	var target models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !target.HasPendingApplication() {
		return nil, models.ErrInvalidState
	}

	updates := map[string]interface{}{"creator_status": decision}
	if decision == models.CreatorStatusApproved {
		updates["role"] = models.RoleCreator
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&target).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	target.CreatorStatus = decision
	if decision == models.CreatorStatusApproved {
		target.Role = models.RoleCreator
	}
	return &target, nil
}

// ModerateCourse resolves a pending course. PUBLISHED and REJECTED are
// terminal; no transition is defined out of them.
func ModerateCourse(db *gorm.DB, actor *models.User, courseID uint, decision string) (*models.Course, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}
	if !models.IsModerationDecision(decision) {
		return nil, models.ErrInvalidState
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !course.CanModerate() {
		return nil, models.ErrInvalidState
	}

	course.Status = decision
	if err := db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// --- Handlers ---

// GetPendingCreators lists undecided creator applications.
func GetPendingCreators(c *fiber.Ctx) error {
	var pending []models.User
	if err := database.Database.Db.
		Where("creator_status = ? AND is_deleted = ?", models.CreatorStatusPending, false).
		Order("applied_at asc").
		Find(&pending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending creators!", nil)
	}

	for i := range pending {
		pending[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending creators fetched successfully!", fiber.Map{
		"creators": pending,
	})
}

func DecideCreator(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(int)
	decision := c.Locals("validatedDecision").(string)

	target, err := DecideCreatorApplication(database.Database.Db, admin, uint(targetUserID), decision)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	go utils.SendCreatorDecisionEmail(target.Email, target.Name, decision)

	target.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Creator application updated successfully!", target)
}

// GetPendingCourses lists courses waiting for review with the owning
// creator and lesson detail joined in.
func GetPendingCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", models.CourseStatusPending, false).
		Order("updated_at asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending courses!", nil)
	}

	type PendingCourse struct {
		models.Course
		CreatorName  string          `json:"creator_name"`
		CreatorEmail string          `json:"creator_email"`
		Lessons      []models.Lesson `json:"lessons"`
	}

	result := make([]PendingCourse, len(courses))
	for i, course := range courses {
		result[i] = PendingCourse{Course: course}

		var creator models.User
		if err := database.Database.Db.Where("id = ?", course.CreatorID).First(&creator).Error; err == nil {
			result[i].CreatorName = creator.Name
			result[i].CreatorEmail = creator.Email
		}

		database.Database.Db.
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Order("lesson_order asc").
			Find(&result[i].Lessons)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

func Moderate(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	decision := c.Locals("validatedDecision").(string)

	course, err := ModerateCourse(database.Database.Db, admin, uint(courseID), decision)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	var creator models.User
	if err := database.Database.Db.Where("id = ?", course.CreatorID).First(&creator).Error; err == nil {
		go utils.SendCourseModeratedEmail(creator.Email, creator.Name, course.Title, decision)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course moderated successfully!", course)
}

// GetAllCourses is the elevated catalog view: no publication filter.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// DashboardStats aggregates platform counts for the admin dashboard.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, publishedCourses, pendingCourses int64
	var pendingApplications, totalEnrollments, totalCertificates int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.CourseStatusPublished, false).Count(&publishedCourses)
	db.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.CourseStatusPending, false).Count(&pendingCourses)
	db.Model(&models.User{}).Where("creator_status = ? AND is_deleted = ?", models.CreatorStatusPending, false).Count(&pendingApplications)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&models.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":          totalUsers,
		"total_courses":        totalCourses,
		"published_courses":    publishedCourses,
		"pending_courses":      pendingCourses,
		"pending_applications": pendingApplications,
		"total_enrollments":    totalEnrollments,
		"total_certificates":   totalCertificates,
	})
}
