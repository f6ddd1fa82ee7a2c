package documentController

import (
	"bims/config"
	"bims/database"
	"bims/middleware"
	"bims/models"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bims/utils"
)

func ListTypes(c *fiber.Ctx) error {
	var docTypes []models.Document
	if err := database.Database.Db.Where("is_active = ?", true).Order("title ASC").Find(&docTypes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch document types!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document types.", docTypes)
}

func CreateType(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDocumentType").(*TypeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("title = ?", reqData.Title).First(&models.Document{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Document type already exists!", nil)
	}

	fields, err := json.Marshal(reqData.RequiredFields)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid required fields!", nil)
	}

	docType := models.Document{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Price:          reqData.Price,
		RequiredFields: fields,
	}
	if err := database.Database.Db.Create(&docType).Error; err != nil {
		log.Printf("Error creating document type: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document type!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document type created.", docType)
}

func UpdateType(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document type id!", nil)
	}

	var docType models.Document
	if err := database.Database.Db.First(&docType, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document type not found!", nil)
	}

	reqData := new(struct {
		Description    *string   `json:"description"`
		Price          *float64  `json:"price"`
		RequiredFields *[]string `json:"requiredFields"`
		IsActive       *bool     `json:"isActive"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Description != nil {
		docType.Description = *reqData.Description
	}
	if reqData.Price != nil {
		docType.Price = *reqData.Price
	}
	if reqData.RequiredFields != nil {
		fields, err := json.Marshal(*reqData.RequiredFields)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid required fields!", nil)
		}
		docType.RequiredFields = fields
	}
	if reqData.IsActive != nil {
		docType.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&docType).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document type!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document type updated.", docType)
}

// Issue appends one immutable row to the issuance ledger. The resident and
// document type are checked inside the same transaction as the insert.
func Issue(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssue").(*IssueRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Price arrives as form input text
	price, err := strconv.ParseFloat(reqData.Price, 64)
	if err != nil || price < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid price!", nil)
	}

	fields, err := json.Marshal(reqData.Fields)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid fields!", nil)
	}

	var issued models.IssuedDocument
	var resident models.Resident

	txErr := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var docType models.Document
		if err := tx.Where("title = ? AND is_active = ?", reqData.DocumentTitle, true).First(&docType).Error; err != nil {
			return fmt.Errorf("document type: %w", err)
		}

		if err := tx.Where("id = ? AND is_archived = ?", reqData.ResidentID, false).First(&resident).Error; err != nil {
			return fmt.Errorf("resident: %w", err)
		}

		issued = models.IssuedDocument{
			DocumentID:    docType.ID,
			ResidentID:    resident.ID,
			ControlNumber: fmt.Sprintf("BIMS-%s", uuid.NewString()),
			IssuedBy:      reqData.IssuedBy,
			Price:         price,
			Fields:        fields,
			Reason:        reqData.Reason,
			IssuedAt:      time.Now(),
		}
		return tx.Create(&issued).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resident or document type not found!", nil)
		}
		log.Printf("Error recording issuance: %v", txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue document!", nil)
	}

	// Notify the resident, best-effort
	go func(residentID uint, title, controlNumber string) {
		var contact models.Contact
		if err := database.Database.Db.Where("resident_id = ?", residentID).First(&contact).Error; err != nil {
			return
		}
		if err := utils.SendIssuanceSMS(contact.Mobile, title, controlNumber); err != nil {
			log.Printf("Error sending issuance SMS: %v", err)
		}
	}(resident.ID, reqData.DocumentTitle, issued.ControlNumber)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document issued successfully.", fiber.Map{
		"issuedId":      issued.ID,
		"controlNumber": issued.ControlNumber,
		"issuedAt":      issued.IssuedAt,
	})
}

// IssuedList is the per-document transaction feed, default page size 10.
func IssuedList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssuedList").(*IssuedListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.IssuedDocument{})
	if reqData.DocumentID != nil {
		db = db.Where("document_id = ?", *reqData.DocumentID)
	}
	if reqData.ResidentID != nil {
		db = db.Where("resident_id = ?", *reqData.ResidentID)
	}

	var total int64
	db.Count(&total)

	var issued []models.IssuedDocument
	if err := db.Preload("Document").Preload("Resident").
		Order("issued_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&issued).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch issued documents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Issued documents.", fiber.Map{
		"issued": issued,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Certificate renders the PDF for an issued document and returns it inline.
func Certificate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid issued document id!", nil)
	}

	var issued models.IssuedDocument
	if err := database.Database.Db.Preload("Document").
		Preload("Resident").Preload("Resident.Address").
		First(&issued, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Issued document not found!", nil)
	}

	var street models.Street
	streetName := ""
	if issued.Resident.Address.StreetID != nil {
		if err := database.Database.Db.First(&street, *issued.Resident.Address.StreetID).Error; err == nil {
			streetName = street.Name
		}
	}

	fields := map[string]string{}
	if len(issued.Fields) > 0 {
		if err := json.Unmarshal(issued.Fields, &fields); err != nil {
			log.Printf("Error decoding issued fields: %v", err)
		}
	}

	pdf, err := utils.RenderCertificate(
		config.AppConfig.BarangayName,
		config.AppConfig.Municipality,
		config.AppConfig.Province,
		utils.CertificateData{
			DocumentTitle: issued.Document.Title,
			ControlNumber: issued.ControlNumber,
			FullName:      issued.Resident.FullName(),
			CivilStatus:   issued.Resident.CivilStatus,
			Purok:         issued.Resident.Address.Purok,
			Street:        streetName,
			YearsStay:     issued.Resident.Address.YearsStay,
			Price:         issued.Price,
			Reason:        issued.Reason,
			Fields:        fields,
			IssuedBy:      issued.IssuedBy,
			IssuedAt:      issued.IssuedAt,
		})
	if err != nil {
		log.Printf("Error rendering certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", issued.ControlNumber))
	return c.Send(pdf)
}

// Request payloads, validated by the document validators.

type TypeRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" validate:"min=0"`
	RequiredFields []string `json:"requiredFields"`
}

type IssueRequest struct {
	DocumentTitle string            `json:"documentTitle" validate:"required"`
	ResidentID    uint              `json:"residentId" validate:"required"`
	Fields        map[string]string `json:"fields"`
	IssuedBy      string            `json:"issuedBy" validate:"required"`
	Price         string            `json:"price" validate:"required"`
	Reason        string            `json:"reason"`
}

type IssuedListRequest struct {
	Page       *int  `json:"page" validate:"omitempty,min=1"`
	Limit      *int  `json:"limit" validate:"omitempty,min=1,max=100"`
	DocumentID *uint `json:"documentId"`
	ResidentID *uint `json:"residentId"`
}
