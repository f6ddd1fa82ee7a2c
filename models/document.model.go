package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is a certificate type definition: a named template with a
// required-fields schema and a price. Configuration data, editable by admins.
type Document struct {
	gorm.Model
	Title          string         `gorm:"unique;not null" json:"title"`
	Description    string         `gorm:"default:''" json:"description"`
	Price          float64        `gorm:"default:0" json:"price"`
	RequiredFields datatypes.JSON `json:"requiredFields"`
	IsActive       bool           `gorm:"default:true" json:"isActive"`
}

// IssuedDocument is one row of the issuance ledger. Rows are immutable after
// creation; there is no update path.
type IssuedDocument struct {
	gorm.Model
	DocumentID    uint           `gorm:"not null;index" json:"documentId"`
	ResidentID    uint           `gorm:"not null;index" json:"residentId"`
	ControlNumber string         `gorm:"unique;not null" json:"controlNumber"`
	IssuedBy      string         `gorm:"not null" json:"issuedBy"`
	Price         float64        `gorm:"default:0" json:"price"`
	Fields        datatypes.JSON `json:"fields"` // filled-in required fields
	Reason        string         `gorm:"default:''" json:"reason"`
	IssuedAt      time.Time      `gorm:"not null;index" json:"issuedAt"`

	Document Document `gorm:"foreignKey:DocumentID" json:"document"`
	Resident Resident `gorm:"foreignKey:ResidentID" json:"resident"`
}
