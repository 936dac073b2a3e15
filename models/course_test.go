package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseCanSubmit(t *testing.T) {
	course := Course{Status: CourseStatusDraft}
	assert.True(t, course.CanSubmit())

	for _, status := range []string{CourseStatusPending, CourseStatusPublished, CourseStatusRejected} {
		course.Status = status
		assert.False(t, course.CanSubmit(), "status %s must not allow submit", status)
	}
}

func TestCourseCanModerate(t *testing.T) {
	course := Course{Status: CourseStatusPending}
	assert.True(t, course.CanModerate())

	// PUBLISHED and REJECTED are terminal, DRAFT is not reviewable yet
	for _, status := range []string{CourseStatusDraft, CourseStatusPublished, CourseStatusRejected} {
		course.Status = status
		assert.False(t, course.CanModerate(), "status %s must not allow moderation", status)
	}
}

func TestCourseOwnership(t *testing.T) {
	owner := User{}
	owner.ID = 7
	stranger := User{}
	stranger.ID = 8

	course := Course{CreatorID: 7}

	assert.True(t, course.IsOwnedBy(&owner))
	assert.False(t, course.IsOwnedBy(&stranger))
}

func TestIsModerationDecision(t *testing.T) {
	assert.True(t, IsModerationDecision(CourseStatusPublished))
	assert.True(t, IsModerationDecision(CourseStatusRejected))
	assert.False(t, IsModerationDecision(CourseStatusDraft))
	assert.False(t, IsModerationDecision(CourseStatusPending))
	assert.False(t, IsModerationDecision("published"))
}

func TestUserCanApplyAsCreator(t *testing.T) {
	learner := User{Role: RoleLearner}
	assert.True(t, learner.CanApplyAsCreator())

	// A rejected applicant may apply again
	rejected := User{Role: RoleLearner, CreatorStatus: CreatorStatusRejected}
	assert.True(t, rejected.CanApplyAsCreator())

	// Only the creator role blocks an application, whatever the status says
	creator := User{Role: RoleCreator, CreatorStatus: CreatorStatusApproved}
	assert.False(t, creator.CanApplyAsCreator())
}

func TestUserHasPendingApplication(t *testing.T) {
	user := User{CreatorStatus: CreatorStatusPending}
	assert.True(t, user.HasPendingApplication())

	user.CreatorStatus = CreatorStatusApproved
	assert.False(t, user.HasPendingApplication())

	user.CreatorStatus = CreatorStatusNone
	assert.False(t, user.HasPendingApplication())
}
