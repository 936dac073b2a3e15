package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles
const (
	RoleLearner = "LEARNER"
	RoleCreator = "CREATOR"
	RoleAdmin   = "ADMIN"
)

// Creator application states
const (
	CreatorStatusNone     = ""
	CreatorStatusPending  = "PENDING"
	CreatorStatusApproved = "APPROVED"
	CreatorStatusRejected = "REJECTED"
)

type User struct {
	gorm.Model
	Name          string `json:"name" gorm:"default:''"`
	Email         string `json:"email" gorm:"unique;not null"`
	Password      string `json:"-" gorm:"not null"`
	Role          string `json:"role" gorm:"default:'LEARNER'"` // LEARNER, CREATOR, ADMIN
	CreatorStatus string `json:"creator_status" gorm:"default:''"`
	// CreatorApplication holds the facts submitted with the creator application.
	// Written once on apply, never mutated after an admin decision.
	CreatorApplication datatypes.JSON `json:"creator_application,omitempty"`
	AppliedAt          *time.Time     `json:"applied_at,omitempty"`
	LastLogin          *time.Time     `json:"last_login,omitempty"`
	IsDeleted          bool           `json:"-" gorm:"default:false"`
}

// CreatorApplicationData is the shape stored in User.CreatorApplication.
type CreatorApplicationData struct {
	Phone      string    `json:"phone"`
	Expertise  string    `json:"expertise"`
	Experience string    `json:"experience"`
	Motivation string    `json:"motivation"`
	AppliedAt  time.Time `json:"applied_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCreator reports whether the user holds the creator role.
func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}

// CanApplyAsCreator reports whether the user may submit a creator application.
// Only the creator role blocks an application; a previously rejected
// applicant may apply again.
func (u *User) CanApplyAsCreator() bool {
	return u.Role != RoleCreator
}

// HasPendingApplication reports whether the user has an undecided application.
func (u *User) HasPendingApplication() bool {
	return u.CreatorStatus == CreatorStatusPending
}

// LoginTracking keeps a per-login audit row.
type LoginTracking struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
