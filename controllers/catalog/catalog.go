package catalogController

import (
	"microcourses/database"
	"microcourses/middleware"
	"microcourses/models"

	"github.com/gofiber/fiber/v2"
)

// ListCourses is the public catalog: published courses only. Admin tooling
// uses the elevated /admin listing instead.
func ListCourses(c *fiber.Ctx) error {
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

	db := database.Database.Db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ?", models.CourseStatusPublished, false)

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithCreator struct {
		models.Course
		CreatorName string `json:"creator_name"`
	}

	result := make([]CourseWithCreator, len(courses))
	for i, course := range courses {
		result[i] = CourseWithCreator{Course: course}
		var creator models.User
		if err := database.Database.Db.Where("id = ?", course.CreatorID).First(&creator).Error; err == nil {
			result[i].CreatorName = creator.Name
		}
	}

	response := map[string]interface{}{
		"courses": result,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails shows a published course with its lessons.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND status = ? AND is_deleted = ?", courseID, models.CourseStatusPublished, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("lesson_order asc").
		Find(&lessons)

	var creator models.User
	creatorName := ""
	if err := database.Database.Db.Where("id = ?", course.CreatorID).First(&creator).Error; err == nil {
		creatorName = creator.Name
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":       course,
		"lessons":      lessons,
		"creator_name": creatorName,
	})
}

// GetLesson returns a single lesson for enrolled learners only.
func GetLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", lessonID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, lesson.CourseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}
