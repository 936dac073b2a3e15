package creatorController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"microcourses/database"
	"microcourses/middleware"
	"microcourses/models"
	"microcourses/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatorApplyRequest is validated by the creator validator.
type CreatorApplyRequest struct {
	Phone      string `json:"phone" validate:"required,min=7"`
	Expertise  string `json:"expertise" validate:"required,min=3"`
	Experience string `json:"experience" validate:"required,min=3"`
	Motivation string `json:"motivation" validate:"required,min=10"`
}

// LessonInput carries the validated payload for AddLesson.
type LessonInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Order    int    `json:"order"`
}

// ApplyAsCreator records a creator application and moves the applicant to
// the pending state. Only the creator role blocks an application; rejected
// applicants may apply again.
func ApplyAsCreator(db *gorm.DB, user *models.User, req CreatorApplyRequest) error {
	if !user.CanApplyAsCreator() {
		return models.ErrAlreadyCreator
	}

	appliedAt := time.Now()
	application := models.CreatorApplicationData{
		Phone:      req.Phone,
		Expertise:  req.Expertise,
		Experience: req.Experience,
		Motivation: req.Motivation,
		AppliedAt:  appliedAt,
	}

	raw, err := json.Marshal(application)
	if err != nil {
		return err
	}

	return db.Model(user).Updates(map[string]interface{}{
		"creator_status":      models.CreatorStatusPending,
		"creator_application": raw,
		"applied_at":          appliedAt,
	}).Error
}

// SubmitCourse moves an owned draft course into review.
func SubmitCourse(db *gorm.DB, actor *models.User, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !course.IsOwnedBy(actor) {
		return nil, models.ErrForbidden
	}
	if !course.CanSubmit() {
		return nil, models.ErrInvalidState
	}

	course.Status = models.CourseStatusPending
	if err := db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// AddLesson appends a lesson to an owned course. The lesson insert and the
// totalLessons recompute share one transaction; a duplicate order leaves
// both untouched. The composite unique index backstops racing inserts.
func AddLesson(db *gorm.DB, actor *models.User, courseID uint, input LessonInput) (*models.Lesson, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !course.IsOwnedBy(actor) {
		return nil, models.ErrForbidden
	}

	lesson := models.Lesson{
		CourseID:   course.ID,
		Title:      input.Title,
		Content:    input.Content,
		VideoURL:   input.VideoURL,
		Order:      input.Order,
		Transcript: "Auto-generated transcript for: " + input.Title,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var clash int64
		tx.Model(&models.Lesson{}).
			Where("course_id = ? AND lesson_order = ? AND is_deleted = ?", course.ID, input.Order, false).
			Count(&clash)
		if clash > 0 {
			return models.ErrDuplicateOrder
		}

		if err := tx.Create(&lesson).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDuplicateOrder
			}
			return err
		}

		var total int64
		if err := tx.Model(&models.Lesson{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&models.Course{}).
			Where("id = ?", course.ID).
			Update("total_lessons", total).Error
	})
	if err != nil {
		return nil, err
	}

	return &lesson, nil
}

// --- Handlers ---

func Apply(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreatorApply").(*CreatorApplyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ApplyAsCreator(database.Database.Db, user, *reqData); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Creator application submitted successfully!", nil)
}

// Dashboard lists the creator's own courses with their lessons.
func Dashboard(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("creator_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithLessons struct {
		models.Course
		Lessons []models.Lesson `json:"lessons"`
	}

	result := make([]CourseWithLessons, len(courses))
	for i, course := range courses {
		result[i] = CourseWithLessons{Course: course}
		database.Database.Db.
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Order("lesson_order asc").
			Find(&result[i].Lessons)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

func CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Thumbnail   string `json:"thumbnail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Thumbnail:   reqData.Thumbnail,
		CreatorID:   user.ID,
		Status:      models.CourseStatusDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func CreateLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedLesson").(*LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := AddLesson(database.Database.Db, user, uint(courseID), *reqData)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	// Backfill video duration from oEmbed metadata, best effort
	if lesson.VideoURL != "" {
		go func(lessonID uint, videoURL string) {
			if minutes := utils.FetchVideoDuration(videoURL); minutes > 0 {
				if err := database.Database.Db.Model(&models.Lesson{}).
					Where("id = ?", lessonID).
					Update("duration", minutes).Error; err != nil {
					log.Printf("Error updating lesson duration: %v", err)
				}
			}
		}(lesson.ID, lesson.VideoURL)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func Submit(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := SubmitCourse(database.Database.Db, user, uint(courseID))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted for review!", course)
}
