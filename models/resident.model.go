package models

import (
	"time"

	"gorm.io/gorm"
)

type Resident struct {
	gorm.Model
	FirstName       string    `gorm:"not null" json:"firstName"`
	MiddleName      string    `gorm:"default:''" json:"middleName"`
	LastName        string    `gorm:"not null" json:"lastName"`
	Suffix          string    `gorm:"default:''" json:"suffix"`
	Gender          string    `gorm:"not null" json:"gender"` // MALE, FEMALE
	BirthDate       time.Time `json:"birthDate"`
	BirthPlace      string    `gorm:"default:''" json:"birthPlace"`
	CivilStatus     string    `gorm:"default:'SINGLE'" json:"civilStatus"` // SINGLE, MARRIED, WIDOWED, SEPARATED
	OccupationID    *uint     `json:"occupationId"`
	NationalityID   *uint     `json:"nationalityId"`
	ReligionID      *uint     `json:"religionId"`
	BenefitID       *uint     `json:"benefitId"`
	IsVoter         bool      `gorm:"default:false" json:"isVoter"`
	PhotoBase64     string    `gorm:"type:text;default:''" json:"photoBase64"`
	FingerprintData string    `gorm:"type:text;default:''" json:"fingerprintData"`
	IsArchived      bool      `gorm:"default:false" json:"isArchived"`

	Address Address `gorm:"foreignKey:ResidentID" json:"address"`
	Contact Contact `gorm:"foreignKey:ResidentID" json:"contact"`
}

// FullName joins the name parts, skipping empty middle name and suffix.
func (r *Resident) FullName() string {
	name := r.FirstName
	if r.MiddleName != "" {
		name += " " + r.MiddleName
	}
	name += " " + r.LastName
	if r.Suffix != "" {
		name += " " + r.Suffix
	}
	return name
}

type Address struct {
	gorm.Model
	ResidentID uint   `gorm:"not null;index" json:"residentId"`
	HouseNo    string `gorm:"default:''" json:"houseNo"`
	StreetID   *uint  `json:"streetId"`
	Purok      string `gorm:"default:''" json:"purok"`
	YearsStay  int    `gorm:"default:0" json:"yearsStay"`
}

type Contact struct {
	gorm.Model
	ResidentID uint   `gorm:"not null;index" json:"residentId"`
	Mobile     string `gorm:"default:''" json:"mobile"`
	Telephone  string `gorm:"default:''" json:"telephone"`
	Email      string `gorm:"default:''" json:"email"`
}
