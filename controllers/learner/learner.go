package learnerController

import (
	"errors"
	"math"
	"time"

	"microcourses/database"
	"microcourses/middleware"
	"microcourses/models"
	"microcourses/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgressSummary is derived on demand from the completion facts. It is
// never cached: the lesson set can grow after a learner has partially
// completed a course.
type ProgressSummary struct {
	TotalLessons     int `json:"total_lessons"`
	CompletedLessons int `json:"completed_lessons"`
	Percentage       int `json:"percentage"`
}

// CompleteLessonResult reports the state after a completion event.
type CompleteLessonResult struct {
	Progress          ProgressSummary     `json:"progress"`
	CertificateIssued bool                `json:"certificate_issued"`
	Certificate       *models.Certificate `json:"certificate,omitempty"`
}

// EnrollInCourse enrolls a learner in a published course. The unique
// (user, course) index resolves racing duplicate enrollments.
func EnrollInCourse(db *gorm.DB, user *models.User, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?",
		courseID, models.CourseStatusPublished, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, course.ID, false).First(&existing).Error; err == nil {
		return nil, models.ErrAlreadyEnrolled
	}

	enrollment := models.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// ComputeProgress derives the completion percentage from the current facts:
// the course's lesson count and the intersection between the learner's
// completed lessons and that lesson set.
func ComputeProgress(db *gorm.DB, userID, courseID uint) (ProgressSummary, error) {
	var total int64
	if err := db.Model(&models.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error; err != nil {
		return ProgressSummary{}, err
	}

	var completed int64
	if err := db.Model(&models.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id AND lessons.is_deleted = ?", false).
		Where("lesson_completions.user_id = ? AND lesson_completions.course_id = ? AND lesson_completions.is_deleted = ?",
			userID, courseID, false).
		Count(&completed).Error; err != nil {
		return ProgressSummary{}, err
	}

	summary := ProgressSummary{
		TotalLessons:     int(total),
		CompletedLessons: int(completed),
	}
	if total > 0 {
		summary.Percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return summary, nil
}

// CompleteLesson records a completion event for an enrolled learner and
// re-evaluates course completion. Marking an already-completed lesson is a
// no-op on the completed set, but completion status is still re-evaluated:
// a lesson added after the learner reached 100% re-opens the course, and
// finishing it must be able to trigger issuance. A certificate is issued at
// exactly 100%, at most once per (learner, course); the completion record
// and the certificate are written in one transaction.
func CompleteLesson(db *gorm.DB, user *models.User, lessonID uint) (*CompleteLessonResult, error) {
	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return nil, models.ErrForbidden
	}

	result := &CompleteLessonResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.LessonCompletion
		alreadyCompleted := tx.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?",
			user.ID, lesson.ID, false).First(&existing).Error == nil

		if !alreadyCompleted {
			completion := models.LessonCompletion{
				UserID:   user.ID,
				LessonID: lesson.ID,
				CourseID: lesson.CourseID,
			}
			if err := tx.Create(&completion).Error; err != nil {
				// A racing request got there first; set semantics, keep going.
				if !errors.Is(err, gorm.ErrDuplicatedKey) {
					return err
				}
			}
		}

		progress, err := ComputeProgress(tx, user.ID, lesson.CourseID)
		if err != nil {
			return err
		}
		result.Progress = progress

		if progress.Percentage != 100 {
			return nil
		}

		var existingCert models.Certificate
		if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
			user.ID, lesson.CourseID, false).First(&existingCert).Error; err == nil {
			return nil
		}

		issuedAt := time.Now()
		certificate := models.Certificate{
			UserID:     user.ID,
			CourseID:   lesson.CourseID,
			SerialHash: utils.GenerateCertificateSerial(user.ID, lesson.CourseID, issuedAt),
			IssuedAt:   issuedAt,
		}
		if err := tx.Create(&certificate).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}

		result.CertificateIssued = true
		result.Certificate = &certificate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// --- Handlers ---

func Enroll(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	enrollment, err := EnrollInCourse(database.Database.Db, user, uint(courseID))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

func Complete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	result, err := CompleteLesson(database.Database.Db, user, uint(lessonID))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	if result.CertificateIssued {
		var course models.Course
		if err := database.Database.Db.Where("id = ?", result.Certificate.CourseID).First(&course).Error; err == nil {
			go utils.SendCertificateEmail(user.Email, user.Name, course.Title,
				result.Certificate.SerialHash, result.Certificate.IssuedAt)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed! Certificate issued!", result)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", result)
}

// GetProgress reports per-course progress for every enrolled course plus
// the learner's certificates.
func GetProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at asc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type CourseProgress struct {
		Course models.Course `json:"course"`
		ProgressSummary
	}

	progressData := make([]CourseProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		summary, err := ComputeProgress(db, user.ID, course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
		}

		progressData = append(progressData, CourseProgress{Course: course, ProgressSummary: summary})
	}

	var certificates []models.Certificate
	db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("issued_at desc").
		Find(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":     progressData,
		"certificates": certificates,
	})
}

// GetCertificates lists the learner's certificates with course titles.
func GetCertificates(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	type CertificateWithCourse struct {
		models.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithCourse{Certificate: cert}
		var course models.Course
		if err := database.Database.Db.Where("id = ?", cert.CourseID).First(&course).Error; err == nil {
			result[i].CourseTitle = course.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
	})
}
