package models

import "gorm.io/gorm"

// ContactMessage stores a contact-form submission before the notification
// email goes out, so messages survive a mail outage.
type ContactMessage struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"type:text"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
