package models

import "gorm.io/gorm"

// Enrollment is the single source of truth for the learner<->course relation.
// The original mirrored membership on both the user and the course; a single
// row with a composite unique index cannot go half-written, and double
// enrollment races are rejected by the index.
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	CourseID  uint `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
