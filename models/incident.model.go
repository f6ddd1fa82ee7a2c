package models

import (
	"time"

	"gorm.io/gorm"
)

// Incident is a blotter case. Narratives accumulate under it over time; the
// first narrative is the initial report, the rest are updates.
type Incident struct {
	gorm.Model
	CaseNumber string `gorm:"unique;not null" json:"caseNumber"`
	Title      string `gorm:"not null" json:"title"`
	ResidentID *uint  `gorm:"index" json:"residentId"` // complainant, when a registered resident
	Status     string `gorm:"default:'OPEN'" json:"status"` // OPEN, SETTLED, ESCALATED

	Narratives []IncidentNarrative `gorm:"foreignKey:IncidentID" json:"narratives"`
}

type IncidentNarrative struct {
	gorm.Model
	IncidentID uint      `gorm:"not null;index" json:"incidentId"`
	Report     string    `gorm:"type:text;not null" json:"report"`
	RecordedBy string    `gorm:"default:''" json:"recordedBy"`
	ReportedAt time.Time `gorm:"not null;index" json:"reportedAt"`
}
