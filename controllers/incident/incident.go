package incidentController

import (
	"bims/database"
	"bims/middleware"
	"bims/models"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Create opens a blotter case with its first narrative in one transaction.
func Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIncident").(*CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var incident models.Incident
	var err error

	// Two concurrent creates can pick the same yearly sequence and trip the
	// unique index. Retry with a fresh read of the last case number.
	for attempt := 0; attempt < 3; attempt++ {
		err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
			year := time.Now().Year()
			seq, err := nextCaseSequence(tx, year)
			if err != nil {
				return err
			}

			incident = models.Incident{
				CaseNumber: fmt.Sprintf("BLT-%d-%04d", year, seq),
				Title:      reqData.Title,
				ResidentID: reqData.ResidentID,
			}
			if err := tx.Create(&incident).Error; err != nil {
				return err
			}

			narrative := models.IncidentNarrative{
				IncidentID: incident.ID,
				Report:     reqData.Report,
				RecordedBy: reqData.RecordedBy,
				ReportedAt: time.Now(),
			}
			return tx.Create(&narrative).Error
		})
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		log.Printf("Error creating incident: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record incident!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Incident recorded.", fiber.Map{
		"incidentId": incident.ID,
		"caseNumber": incident.CaseNumber,
	})
}

// nextCaseSequence reads the highest case number recorded for the year and
// returns the one after it. Zero-padding keeps the lexicographic order usable.
func nextCaseSequence(tx *gorm.DB, year int) (int, error) {
	prefix := fmt.Sprintf("BLT-%d-", year)

	var last models.Incident
	err := tx.Where("case_number LIKE ?", prefix+"%").
		Order("case_number DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last.CaseNumber, prefix))
	if err != nil {
		return 0, fmt.Errorf("case number %q: %w", last.CaseNumber, err)
	}
	return seq + 1, nil
}

// AddNarrative appends an update to an existing case.
func AddNarrative(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNarrative").(*NarrativeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var incident models.Incident
	if err := database.Database.Db.First(&incident, reqData.IncidentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Incident not found!", nil)
	}

	narrative := models.IncidentNarrative{
		IncidentID: incident.ID,
		Report:     reqData.Report,
		RecordedBy: reqData.RecordedBy,
		ReportedAt: time.Now(),
	}
	if err := database.Database.Db.Create(&narrative).Error; err != nil {
		log.Printf("Error adding narrative: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record narrative!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Narrative recorded.", narrative)
}

// UpdateStatus moves a case between OPEN, SETTLED and ESCALATED.
func UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid incident id!", nil)
	}

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	switch reqData.Status {
	case "OPEN", "SETTLED", "ESCALATED":
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status!", nil)
	}

	var incident models.Incident
	if err := database.Database.Db.First(&incident, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Incident not found!", nil)
	}

	if err := database.Database.Db.Model(&incident).Update("status", reqData.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update incident!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Incident updated.", incident)
}

// List returns paginated cases with their narratives.
func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIncidentList").(*ListRequest)
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

	db := database.Database.Db.Model(&models.Incident{})
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var incidents []models.Incident
	if err := db.Preload("Narratives", func(db *gorm.DB) *gorm.DB {
		return db.Order("reported_at ASC")
	}).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&incidents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch incidents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Incident list.", fiber.Map{
		"incidents": incidents,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Request payloads, validated by the incident validators.

type CreateRequest struct {
	Title      string `json:"title" validate:"required"`
	ResidentID *uint  `json:"residentId"`
	Report     string `json:"report" validate:"required"`
	RecordedBy string `json:"recordedBy"`
}

type NarrativeRequest struct {
	IncidentID uint   `json:"incidentId" validate:"required"`
	Report     string `json:"report" validate:"required"`
	RecordedBy string `json:"recordedBy"`
}

type ListRequest struct {
	Page   *int   `json:"page" validate:"omitempty,min=1"`
	Limit  *int   `json:"limit" validate:"omitempty,min=1,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=OPEN SETTLED ESCALATED"`
}
