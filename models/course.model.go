package models

import "gorm.io/gorm"

// Course publication states
const (
	CourseStatusDraft     = "DRAFT"
	CourseStatusPending   = "PENDING"
	CourseStatusPublished = "PUBLISHED"
	CourseStatusRejected  = "REJECTED"
)

// Course represents a learning course authored by a creator.
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	CreatorID   uint   `json:"creator_id" gorm:"index;not null"`
	Status      string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PENDING, PUBLISHED, REJECTED
	// TotalLessons mirrors the size of the course's lesson set. It is
	// recomputed inside the same transaction as every lesson insert.
	TotalLessons int  `json:"total_lessons" gorm:"default:0"`
	IsDeleted    bool `json:"-" gorm:"default:false"`
}

// IsOwnedBy reports whether the given user authored the course.
func (c *Course) IsOwnedBy(u *User) bool {
	return c.CreatorID == u.ID
}

// CanSubmit reports whether the course may move to review.
func (c *Course) CanSubmit() bool {
	return c.Status == CourseStatusDraft
}

// CanModerate reports whether an admin decision is still possible.
// PUBLISHED and REJECTED are terminal.
func (c *Course) CanModerate() bool {
	return c.Status == CourseStatusPending
}

// IsModerationDecision reports whether s is a valid admin decision.
func IsModerationDecision(s string) bool {
	return s == CourseStatusPublished || s == CourseStatusRejected
}
