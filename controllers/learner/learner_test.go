package learnerController

import (
	"fmt"
	"strings"
	"testing"

	"microcourses/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.LessonCompletion{},
		&models.Enrollment{},
		&models.Certificate{},
	))
	return db
}

func createLearner(t *testing.T, db *gorm.DB, email string) *models.User {
	user := models.User{Name: "Learner", Email: email, Password: "hashed", Role: models.RoleLearner}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createPublishedCourse(t *testing.T, db *gorm.DB, lessonCount int) *models.Course {
	course := models.Course{
		Title:        "Go for Learners",
		Description:  "From zero to certificate",
		CreatorID:    1,
		Status:       models.CourseStatusPublished,
		TotalLessons: lessonCount,
	}
	require.NoError(t, db.Create(&course).Error)

	for i := 1; i <= lessonCount; i++ {
		lesson := models.Lesson{
			CourseID: course.ID,
			Title:    fmt.Sprintf("Lesson %d", i),
			Content:  "content",
			Order:    i,
		}
		require.NoError(t, db.Create(&lesson).Error)
	}
	return &course
}

func courseLessons(t *testing.T, db *gorm.DB, courseID uint) []models.Lesson {
	var lessons []models.Lesson
	require.NoError(t, db.Where("course_id = ?", courseID).Order("lesson_order asc").Find(&lessons).Error)
	return lessons
}

func TestEnrollInCourse(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 1)

	enrollment, err := EnrollInCourse(db, learner, course.ID)
	require.NoError(t, err)
	assert.Equal(t, learner.ID, enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
}

func TestEnrollTwiceKeepsSingleRecord(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 1)

	_, err := EnrollInCourse(db, learner, course.ID)
	require.NoError(t, err)

	_, err = EnrollInCourse(db, learner, course.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyEnrolled)

	var count int64
	db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", learner.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollOnlyInPublishedCourses(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")

	for _, status := range []string{models.CourseStatusDraft, models.CourseStatusPending, models.CourseStatusRejected} {
		course := models.Course{Title: "Hidden", Description: "Not live", CreatorID: 1, Status: status}
		require.NoError(t, db.Create(&course).Error)

		_, err := EnrollInCourse(db, learner, course.ID)
		assert.ErrorIs(t, err, models.ErrNotFound, "status %s must not be enrollable", status)
	}
}

func TestComputeProgressEmptyCourse(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 0)

	summary, err := ComputeProgress(db, learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalLessons)
	assert.Equal(t, 0, summary.Percentage)
}

func TestCompleteLessonProgressAndCertificate(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 2)
	lessons := courseLessons(t, db, course.ID)

	_, err := EnrollInCourse(db, learner, course.ID)
	require.NoError(t, err)

	// Halfway: no certificate yet
	result, err := CompleteLesson(db, learner, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, result.Progress.Percentage)
	assert.False(t, result.CertificateIssued)
	assert.Nil(t, result.Certificate)

	// Finishing the second lesson reaches 100% and issues exactly once
	result, err = CompleteLesson(db, learner, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Progress.Percentage)
	assert.True(t, result.CertificateIssued)
	require.NotNil(t, result.Certificate)
	assert.NotEmpty(t, result.Certificate.SerialHash)
	assert.Len(t, result.Certificate.SerialHash, 64)

	var count int64
	db.Model(&models.Certificate{}).
		Where("user_id = ? AND course_id = ?", learner.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 2)
	lessons := courseLessons(t, db, course.ID)

	_, err := EnrollInCourse(db, learner, course.ID)
	require.NoError(t, err)

	first, err := CompleteLesson(db, learner, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Progress.CompletedLessons)

	// Marking the same lesson again does not grow the completed set
	again, err := CompleteLesson(db, learner, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Progress.CompletedLessons)
	assert.Equal(t, 50, again.Progress.Percentage)

	var count int64
	db.Model(&models.LessonCompletion{}).
		Where("user_id = ? AND lesson_id = ?", learner.ID, lessons[0].ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCompleteLessonRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 1)
	lessons := courseLessons(t, db, course.ID)

	_, err := CompleteLesson(db, learner, lessons[0].ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = CompleteLesson(db, learner, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLessonAddedAfterCompletionReopensCourse(t *testing.T) {
	db := setupTestDB(t)
	learner := createLearner(t, db, "learner@test.com")
	course := createPublishedCourse(t, db, 1)
	lessons := courseLessons(t, db, course.ID)

	_, err := EnrollInCourse(db, learner, course.ID)
	require.NoError(t, err)

	result, err := CompleteLesson(db, learner, lessons[0].ID)
	require.NoError(t, err)
	assert.True(t, result.CertificateIssued)

	// A new lesson drops the learner below 100% again
	extra := models.Lesson{CourseID: course.ID, Title: "Bonus", Content: "more", Order: 2}
	require.NoError(t, db.Create(&extra).Error)

	summary, err := ComputeProgress(db, learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, summary.Percentage)

	// Finishing it reaches 100% again, but the certificate is not re-issued
	result, err = CompleteLesson(db, learner, extra.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Progress.Percentage)
	assert.False(t, result.CertificateIssued)

	var count int64
	db.Model(&models.Certificate{}).
		Where("user_id = ? AND course_id = ?", learner.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCertificateSerialsAreDistinct(t *testing.T) {
	db := setupTestDB(t)
	first := createLearner(t, db, "first@test.com")
	second := createLearner(t, db, "second@test.com")
	course := createPublishedCourse(t, db, 1)
	lessons := courseLessons(t, db, course.ID)

	for _, learner := range []*models.User{first, second} {
		_, err := EnrollInCourse(db, learner, course.ID)
		require.NoError(t, err)
		result, err := CompleteLesson(db, learner, lessons[0].ID)
		require.NoError(t, err)
		require.True(t, result.CertificateIssued)
	}

	var certificates []models.Certificate
	require.NoError(t, db.Where("course_id = ?", course.ID).Find(&certificates).Error)
	require.Len(t, certificates, 2)
	assert.NotEqual(t, certificates[0].SerialHash, certificates[1].SerialHash)
}
