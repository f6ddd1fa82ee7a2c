package models

import (
	"gorm.io/gorm"
)

// PopulationSnapshot is written once per day by the stats scheduler.
type PopulationSnapshot struct {
	gorm.Model
	Total      int64 `gorm:"not null" json:"total"`
	Male       int64 `gorm:"default:0" json:"male"`
	Female     int64 `gorm:"default:0" json:"female"`
	Voters     int64 `gorm:"default:0" json:"voters"`
	Archived   int64 `gorm:"default:0" json:"archived"`
	SnapshotOn string `gorm:"unique;not null" json:"snapshotOn"` // YYYY-MM-DD
}
