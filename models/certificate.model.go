package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an append-only record issued when a learner reaches 100%
// completion of a course. At most one certificate exists per (user, course);
// the unique index guards against re-issuance when completion is
// re-evaluated after the course already reached 100%.
type Certificate struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course_cert"`
	CourseID   uint      `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course_cert"`
	SerialHash string    `json:"serial_hash" gorm:"unique;not null"`
	IssuedAt   time.Time `json:"issued_at"`
	IsDeleted  bool      `json:"-" gorm:"default:false"`
}
