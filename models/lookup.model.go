package models

import (
	"gorm.io/gorm"
)

// Lookup tables are reference data seeded at migration time and read-only
// from the application's perspective.

type Occupation struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type Nationality struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type Religion struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type Benefit struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type Street struct {
	gorm.Model
	Name  string `gorm:"unique;not null" json:"name"`
	Purok string `gorm:"default:''" json:"purok"`
}
