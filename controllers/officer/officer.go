package officerController

import (
	"bims/database"
	"bims/middleware"
	"bims/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListBatches(c *fiber.Ctx) error {
	var batches []models.OfficerBatch
	if err := database.Database.Db.Preload("Officers", func(db *gorm.DB) *gorm.DB {
		return db.Order("rank ASC")
	}).Order("start_year DESC").Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch officer batches!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Officer batches.", batches)
}

func CreateBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBatch").(*BatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	batch := models.OfficerBatch{
		Name:      reqData.Name,
		StartYear: reqData.StartYear,
		EndYear:   reqData.EndYear,
		IsCurrent: reqData.IsCurrent,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// At most one current batch
		if reqData.IsCurrent {
			if err := tx.Model(&models.OfficerBatch{}).Where("is_current = ?", true).
				Update("is_current", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&batch).Error
	})
	if err != nil {
		log.Printf("Error creating officer batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Officer batch created.", batch)
}

func GetBatch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid batch id!", nil)
	}

	var batch models.OfficerBatch
	if err := database.Database.Db.Preload("Officers", func(db *gorm.DB) *gorm.DB {
		return db.Order("rank ASC")
	}).First(&batch, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Officer batch.", batch)
}

func AddOfficer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOfficer").(*OfficerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.First(&models.OfficerBatch{}, reqData.BatchID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	officer := models.Officer{
		BatchID:     reqData.BatchID,
		Role:        reqData.Role,
		Name:        reqData.Name,
		PhotoBase64: reqData.PhotoBase64,
		Rank:        reqData.Rank,
	}
	if err := database.Database.Db.Create(&officer).Error; err != nil {
		log.Printf("Error adding officer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add officer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Officer added.", officer)
}

func UpdateOfficer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid officer id!", nil)
	}

	var officer models.Officer
	if err := database.Database.Db.First(&officer, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Officer not found!", nil)
	}

	reqData := new(struct {
		Role        *string `json:"role"`
		Name        *string `json:"name"`
		PhotoBase64 *string `json:"photoBase64"`
		Rank        *int    `json:"rank"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Role != nil {
		officer.Role = *reqData.Role
	}
	if reqData.Name != nil {
		officer.Name = *reqData.Name
	}
	if reqData.PhotoBase64 != nil {
		officer.PhotoBase64 = *reqData.PhotoBase64
	}
	if reqData.Rank != nil {
		officer.Rank = *reqData.Rank
	}

	if err := database.Database.Db.Save(&officer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update officer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Officer updated.", officer)
}

func DeleteOfficer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid officer id!", nil)
	}

	var officer models.Officer
	if err := database.Database.Db.First(&officer, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Officer not found!", nil)
	}

	if err := database.Database.Db.Delete(&officer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete officer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Officer removed.", nil)
}

// Request payloads, validated by the officer validators.

type BatchRequest struct {
	Name      string `json:"name" validate:"required"`
	StartYear int    `json:"startYear" validate:"required,min=1900"`
	EndYear   int    `json:"endYear" validate:"required,gtefield=StartYear"`
	IsCurrent bool   `json:"isCurrent"`
}

type OfficerRequest struct {
	BatchID     uint   `json:"batchId" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Name        string `json:"name" validate:"required"`
	PhotoBase64 string `json:"photoBase64"`
	Rank        int    `json:"rank" validate:"min=0"`
}
