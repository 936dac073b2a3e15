package utils

import (
	"log"

	"microcourses/database"
	"microcourses/models"

	"github.com/robfig/cron/v3"
)

// InitializeReviewScheduler sets up the daily moderation-queue reminder
func InitializeReviewScheduler() {
	log.Println("[REVIEW-SCHEDULER] Initializing review reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind admins about the moderation queue
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REVIEW-SCHEDULER] Running daily moderation queue check...")
		SendPendingReviewReminders()
	})

	c.Start()
	log.Println("[REVIEW-SCHEDULER] Scheduler started - runs daily at 9 AM")
}

// SendPendingReviewReminders emails every admin the size of the moderation
// queue. Skipped entirely when nothing is pending.
func SendPendingReviewReminders() {
	db := database.Database.Db

	var pendingCourses int64
	db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ?", models.CourseStatusPending, false).
		Count(&pendingCourses)

	var pendingApplications int64
	db.Model(&models.User{}).
		Where("creator_status = ? AND is_deleted = ?", models.CreatorStatusPending, false).
		Count(&pendingApplications)

	if pendingCourses == 0 && pendingApplications == 0 {
		log.Println("[REVIEW-SCHEDULER] Moderation queue is empty, no reminders sent")
		return
	}

	var admins []models.User
	if err := db.Where("role = ? AND is_deleted = ?", models.RoleAdmin, false).Find(&admins).Error; err != nil {
		log.Printf("[REVIEW-SCHEDULER] Error fetching admins: %v", err)
		return
	}

	for _, admin := range admins {
		SendPendingReviewReminder(admin.Email, pendingCourses, pendingApplications)
	}

	log.Printf("[REVIEW-SCHEDULER] Reminders sent to %d admin(s): %d pending courses, %d pending applications",
		len(admins), pendingCourses, pendingApplications)
}
