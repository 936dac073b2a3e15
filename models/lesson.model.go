package models

import "gorm.io/gorm"

// Lesson belongs to exactly one course. Order is unique within the course;
// the composite index makes concurrent duplicate inserts fail at the
// storage layer instead of racing in application code.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_course_order"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"video_url"`
	Transcript string `json:"transcript" gorm:"type:text"`
	Order      int    `json:"order" gorm:"column:lesson_order;not null;uniqueIndex:idx_course_order"`
	Duration   int    `json:"duration" gorm:"default:0"` // minutes
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// LessonCompletion records that a learner finished a lesson. Set semantics:
// the unique index keeps repeated completions down to a single row.
type LessonCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_lesson"`
	LessonID  uint `json:"lesson_id" gorm:"index;not null;uniqueIndex:idx_user_lesson"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
