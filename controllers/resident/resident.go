package residentController

import (
	"bims/database"
	"bims/middleware"
	"bims/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register creates a resident together with its address and contact
// satellites in a single transaction, so a mid-sequence failure cannot leave
// orphaned rows.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	birthDate, err := time.Parse("2006-01-02", reqData.BirthDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid birth date, expected YYYY-MM-DD!", nil)
	}

	resident := models.Resident{
		FirstName:       reqData.FirstName,
		MiddleName:      reqData.MiddleName,
		LastName:        reqData.LastName,
		Suffix:          reqData.Suffix,
		Gender:          reqData.Gender,
		BirthDate:       birthDate,
		BirthPlace:      reqData.BirthPlace,
		CivilStatus:     reqData.CivilStatus,
		OccupationID:    reqData.OccupationID,
		NationalityID:   reqData.NationalityID,
		ReligionID:      reqData.ReligionID,
		BenefitID:       reqData.BenefitID,
		IsVoter:         reqData.IsVoter,
		PhotoBase64:     reqData.PhotoBase64,
		FingerprintData: reqData.FingerprintData,
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resident).Error; err != nil {
			return err
		}

		address := models.Address{
			ResidentID: resident.ID,
			HouseNo:    reqData.HouseNo,
			StreetID:   reqData.StreetID,
			Purok:      reqData.Purok,
			YearsStay:  reqData.YearsStay,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		contact := models.Contact{
			ResidentID: resident.ID,
			Mobile:     reqData.Mobile,
			Telephone:  reqData.Telephone,
			Email:      reqData.Email,
		}
		return tx.Create(&contact).Error
	})
	if err != nil {
		log.Printf("Error registering resident: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register resident!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resident registered successfully.", fiber.Map{
		"residentId": resident.ID,
	})
}

// RegisterRequest is the registration payload, validated upstream.
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	MiddleName      string `json:"middleName"`
	LastName        string `json:"lastName" validate:"required"`
	Suffix          string `json:"suffix"`
	Gender          string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	BirthDate       string `json:"birthDate" validate:"required"`
	BirthPlace      string `json:"birthPlace"`
	CivilStatus     string `json:"civilStatus" validate:"required,oneof=SINGLE MARRIED WIDOWED SEPARATED"`
	OccupationID    *uint  `json:"occupationId"`
	NationalityID   *uint  `json:"nationalityId"`
	ReligionID      *uint  `json:"religionId"`
	BenefitID       *uint  `json:"benefitId"`
	IsVoter         bool   `json:"isVoter"`
	PhotoBase64     string `json:"photoBase64"`
	FingerprintData string `json:"fingerprintData"`

	HouseNo   string `json:"houseNo"`
	StreetID  *uint  `json:"streetId"`
	Purok     string `json:"purok"`
	YearsStay int    `json:"yearsStay"`

	Mobile    string `json:"mobile"`
	Telephone string `json:"telephone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// List returns a paginated resident list with an optional name search.
func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResidentList").(*ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 25
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Resident{})
	if !reqData.IncludeArchived {
		db = db.Where("is_archived = ?", false)
	}
	if reqData.Search != "" {
		pattern := "%" + reqData.Search + "%"
		db = db.Where("first_name LIKE ? OR middle_name LIKE ? OR last_name LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	db.Count(&total)

	var residents []models.Resident
	if err := db.Preload("Address").Preload("Contact").
		Order("last_name ASC, first_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&residents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch residents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resident list.", fiber.Map{
		"residents": residents,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func Profile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resident id!", nil)
	}

	var resident models.Resident
	if err := database.Database.Db.Preload("Address").Preload("Contact").
		First(&resident, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resident not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resident profile.", resident)
}

func Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resident id!", nil)
	}

	var resident models.Resident
	if err := database.Database.Db.First(&resident, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resident not found!", nil)
	}

	updates := map[string]interface{}{}
	if err := c.BodyParser(&updates); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Identity fields only; satellites have their own endpoints.
	allowed := map[string]string{
		"firstName": "first_name", "middleName": "middle_name", "lastName": "last_name",
		"suffix": "suffix", "gender": "gender", "birthPlace": "birth_place",
		"civilStatus": "civil_status", "isVoter": "is_voter",
		"photoBase64": "photo_base64", "fingerprintData": "fingerprint_data",
	}
	// Same enums Register enforces
	if gender, ok := updates["gender"]; ok {
		if gender != "MALE" && gender != "FEMALE" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid gender!", nil)
		}
	}
	if civilStatus, ok := updates["civilStatus"]; ok {
		switch civilStatus {
		case "SINGLE", "MARRIED", "WIDOWED", "SEPARATED":
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid civil status!", nil)
		}
	}

	columns := map[string]interface{}{}
	for key, value := range updates {
		if col, ok := allowed[key]; ok {
			columns[col] = value
		}
	}
	if birthDate, ok := updates["birthDate"].(string); ok {
		parsed, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid birth date, expected YYYY-MM-DD!", nil)
		}
		columns["birth_date"] = parsed
	}
	if len(columns) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No updatable fields in request!", nil)
	}

	if err := database.Database.Db.Model(&resident).Updates(columns).Error; err != nil {
		log.Printf("Error updating resident: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resident!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resident updated successfully.", resident)
}

func UpdateAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resident id!", nil)
	}

	var address models.Address
	if err := database.Database.Db.Where("resident_id = ?", id).First(&address).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Address not found!", nil)
	}

	reqData := new(struct {
		HouseNo   *string `json:"houseNo"`
		StreetID  *uint   `json:"streetId"`
		Purok     *string `json:"purok"`
		YearsStay *int    `json:"yearsStay"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.HouseNo != nil {
		address.HouseNo = *reqData.HouseNo
	}
	if reqData.StreetID != nil {
		address.StreetID = reqData.StreetID
	}
	if reqData.Purok != nil {
		address.Purok = *reqData.Purok
	}
	if reqData.YearsStay != nil {
		address.YearsStay = *reqData.YearsStay
	}

	if err := database.Database.Db.Save(&address).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update address!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Address updated successfully.", address)
}

func UpdateContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resident id!", nil)
	}

	var contact models.Contact
	if err := database.Database.Db.Where("resident_id = ?", id).First(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	reqData := new(struct {
		Mobile    *string `json:"mobile"`
		Telephone *string `json:"telephone"`
		Email     *string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Mobile != nil {
		contact.Mobile = *reqData.Mobile
	}
	if reqData.Telephone != nil {
		contact.Telephone = *reqData.Telephone
	}
	if reqData.Email != nil {
		contact.Email = *reqData.Email
	}

	if err := database.Database.Db.Save(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update contact!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact updated successfully.", contact)
}

// Archive soft-archives a resident. Records are never hard-deleted.
func Archive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resident id!", nil)
	}

	var resident models.Resident
	if err := database.Database.Db.First(&resident, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resident not found!", nil)
	}

	if err := database.Database.Db.Model(&resident).Update("is_archived", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive resident!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resident archived.", nil)
}

// Stats reports the population counters shown on the dashboard.
func Stats(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Resident{})

	var total, male, female, voters, archived int64
	db.Where("is_archived = ?", false).Count(&total)
	database.Database.Db.Model(&models.Resident{}).Where("is_archived = ? AND gender = ?", false, "MALE").Count(&male)
	database.Database.Db.Model(&models.Resident{}).Where("is_archived = ? AND gender = ?", false, "FEMALE").Count(&female)
	database.Database.Db.Model(&models.Resident{}).Where("is_archived = ? AND is_voter = ?", false, true).Count(&voters)
	database.Database.Db.Model(&models.Resident{}).Where("is_archived = ?", true).Count(&archived)

	byCivilStatus := map[string]int64{}
	for _, status := range []string{"SINGLE", "MARRIED", "WIDOWED", "SEPARATED"} {
		var count int64
		database.Database.Db.Model(&models.Resident{}).Where("is_archived = ? AND civil_status = ?", false, status).Count(&count)
		byCivilStatus[status] = count
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Population statistics.", fiber.Map{
		"total":         total,
		"male":          male,
		"female":        female,
		"voters":        voters,
		"archived":      archived,
		"byCivilStatus": byCivilStatus,
	})
}

// ListRequest is the resident list payload, validated upstream.
type ListRequest struct {
	Page            *int   `json:"page" validate:"omitempty,min=1"`
	Limit           *int   `json:"limit" validate:"omitempty,min=1,max=100"`
	Search          string `json:"search"`
	IncludeArchived bool   `json:"includeArchived"`
}
