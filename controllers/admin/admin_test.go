package adminController

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

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

func createAdmin(t *testing.T, db *gorm.DB) *models.User {
	admin := models.User{Name: "Admin", Email: "admin@test.com", Password: "hashed", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func createApplicant(t *testing.T, db *gorm.DB, email string) *models.User {
	application, _ := json.Marshal(models.CreatorApplicationData{
		Phone: "1234567890", Expertise: "Go", Experience: "3 years", Motivation: "Teaching",
	})
	now := time.Now()
	user := models.User{
		Name:               "Applicant",
		Email:              email,
		Password:           "hashed",
		Role:               models.RoleLearner,
		CreatorStatus:      models.CreatorStatusPending,
		CreatorApplication: application,
		AppliedAt:          &now,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestDecideCreatorApplicationApprove(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	applicant := createApplicant(t, db, "applicant@test.com")

	decided, err := DecideCreatorApplication(db, admin, applicant.ID, models.CreatorStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.CreatorStatusApproved, decided.CreatorStatus)
	assert.Equal(t, models.RoleCreator, decided.Role)

	// Status and role land together
	var stored models.User
	require.NoError(t, db.First(&stored, applicant.ID).Error)
	assert.Equal(t, models.CreatorStatusApproved, stored.CreatorStatus)
	assert.Equal(t, models.RoleCreator, stored.Role)
}

func TestDecideCreatorApplicationReject(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	applicant := createApplicant(t, db, "applicant@test.com")

	decided, err := DecideCreatorApplication(db, admin, applicant.ID, models.CreatorStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.CreatorStatusRejected, decided.CreatorStatus)
	assert.Equal(t, models.RoleLearner, decided.Role)
}

func TestDecideCreatorApplicationErrors(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	applicant := createApplicant(t, db, "applicant@test.com")

	_, err := DecideCreatorApplication(db, admin, 9999, models.CreatorStatusApproved)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = DecideCreatorApplication(db, admin, applicant.ID, "MAYBE")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	_, err = DecideCreatorApplication(db, applicant, applicant.ID, models.CreatorStatusApproved)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// A decided application cannot be decided again
	_, err = DecideCreatorApplication(db, admin, applicant.ID, models.CreatorStatusApproved)
	require.NoError(t, err)
	_, err = DecideCreatorApplication(db, admin, applicant.ID, models.CreatorStatusRejected)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestModerateCoursePublish(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	course := models.Course{Title: "Go 101", Description: "Basics", CreatorID: 1, Status: models.CourseStatusPending}
	require.NoError(t, db.Create(&course).Error)

	moderated, err := ModerateCourse(db, admin, course.ID, models.CourseStatusPublished)
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusPublished, moderated.Status)
}

func TestModerateCourseReject(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	course := models.Course{Title: "Go 101", Description: "Basics", CreatorID: 1, Status: models.CourseStatusPending}
	require.NoError(t, db.Create(&course).Error)

	moderated, err := ModerateCourse(db, admin, course.ID, models.CourseStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusRejected, moderated.Status)
}

func TestModerateCourseErrors(t *testing.T) {
	db := setupTestDB(t)
	admin := createAdmin(t, db)
	learner := models.User{Name: "Learner", Email: "learner@test.com", Password: "hashed", Role: models.RoleLearner}
	require.NoError(t, db.Create(&learner).Error)

	draft := models.Course{Title: "Draft", Description: "Not submitted", CreatorID: 1, Status: models.CourseStatusDraft}
	require.NoError(t, db.Create(&draft).Error)
	published := models.Course{Title: "Done", Description: "Already live", CreatorID: 1, Status: models.CourseStatusPublished}
	require.NoError(t, db.Create(&published).Error)
	pending := models.Course{Title: "Pending", Description: "Waiting", CreatorID: 1, Status: models.CourseStatusPending}
	require.NoError(t, db.Create(&pending).Error)

	_, err := ModerateCourse(db, admin, 9999, models.CourseStatusPublished)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = ModerateCourse(db, &learner, pending.ID, models.CourseStatusPublished)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = ModerateCourse(db, admin, pending.ID, models.CourseStatusDraft)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	// Only pending courses are reviewable
	_, err = ModerateCourse(db, admin, draft.ID, models.CourseStatusPublished)
	assert.ErrorIs(t, err, models.ErrInvalidState)
	_, err = ModerateCourse(db, admin, published.ID, models.CourseStatusRejected)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}
