package models

import (
	"gorm.io/gorm"
)

// OfficerBatch is a term of office: officers belong to exactly one batch.
type OfficerBatch struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	StartYear int    `gorm:"not null" json:"startYear"`
	EndYear   int    `gorm:"not null" json:"endYear"`
	IsCurrent bool   `gorm:"default:false" json:"isCurrent"`

	Officers []Officer `gorm:"foreignKey:BatchID" json:"officers"`
}

type Officer struct {
	gorm.Model
	BatchID     uint   `gorm:"not null;index" json:"batchId"`
	Role        string `gorm:"not null" json:"role"` // e.g. Punong Barangay, Kagawad, SK Chairman
	Name        string `gorm:"not null" json:"name"`
	PhotoBase64 string `gorm:"type:text;default:''" json:"photoBase64"`
	Rank        int    `gorm:"default:0" json:"rank"` // display order within the batch
}
