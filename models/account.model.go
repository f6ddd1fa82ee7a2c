package models

import (
	"time"

	"gorm.io/gorm"
)

// Account links a login credential to a resident identity.
type Account struct {
	gorm.Model
	ResidentID  uint       `gorm:"not null;index" json:"residentId"`
	Username    string     `gorm:"unique;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"default:'STAFF'" json:"role"` // ADMIN, STAFF
	ImageBase64 string     `gorm:"type:text;default:''" json:"imageBase64"`
	LastLogin   *time.Time `json:"lastLogin"`
	IsDeleted   bool       `gorm:"default:false" json:"isDeleted"`

	Resident Resident `gorm:"foreignKey:ResidentID" json:"resident"`
}

// LoginTracking records every successful login for the audit trail.
type LoginTracking struct {
	gorm.Model
	AccountID uint   `gorm:"not null;index" json:"accountId"`
	IP        string `gorm:"default:''" json:"ip"`
	UserAgent string `gorm:"default:''" json:"userAgent"`
}
