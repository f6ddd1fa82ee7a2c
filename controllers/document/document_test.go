package documentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"bims/config"
	documentController "bims/controllers/document"
	"bims/database"
	"bims/models"
	documentValidator "bims/validators/document"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Resident{},
		&models.Address{},
		&models.Contact{},
		&models.Street{},
		&models.Document{},
		&models.IssuedDocument{},
	)
	require.NoError(t, err)

	database.Database = database.DbInstance{Db: db}
	config.LoadConfig()
	return db
}

func newDocApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/docs/issue", documentValidator.Issue(), documentController.Issue)
	app.Post("/api/docs/issued/read", documentValidator.IssuedList(), documentController.IssuedList)
	app.Get("/api/docs/certificate/:id", documentController.Certificate)
	return app
}

func seedDocData(t *testing.T, db *gorm.DB) (models.Resident, models.Document) {
	resident := models.Resident{FirstName: "Juan", LastName: "Dela Cruz", Gender: "MALE", CivilStatus: "SINGLE"}
	require.NoError(t, db.Create(&resident).Error)
	require.NoError(t, db.Create(&models.Address{ResidentID: resident.ID, Purok: "Purok 2"}).Error)
	require.NoError(t, db.Create(&models.Contact{ResidentID: resident.ID, Mobile: "09171234567"}).Error)

	clearance := models.Document{Title: "Barangay Clearance", Price: 50, RequiredFields: []byte(`["purpose"]`)}
	require.NoError(t, db.Create(&clearance).Error)
	return resident, clearance
}

func issuePayload(residentID uint) map[string]interface{} {
	return map[string]interface{}{
		"documentTitle": "Barangay Clearance",
		"residentId":    residentID,
		"fields":        map[string]string{"purpose": "employment"},
		"issuedBy":      "Maria Santos",
		"price":         "50.00",
		"reason":        "employment requirement",
	}
}

func TestIssueRecordsLedgerRow(t *testing.T) {
	db := setupTestDB(t)
	resident, clearance := seedDocData(t, db)
	app := newDocApp()

	payload, _ := json.Marshal(issuePayload(resident.ID))
	req := httptest.NewRequest("POST", "/api/docs/issue", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Data struct {
			ControlNumber string `json:"controlNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Data.ControlNumber, "BIMS-")

	var issued models.IssuedDocument
	require.NoError(t, db.First(&issued).Error)
	assert.Equal(t, clearance.ID, issued.DocumentID)
	assert.Equal(t, resident.ID, issued.ResidentID)
	assert.Equal(t, 50.0, issued.Price)
}

func TestIssueUnknownResident(t *testing.T) {
	db := setupTestDB(t)
	seedDocData(t, db)
	app := newDocApp()

	payload, _ := json.Marshal(issuePayload(9999))
	req := httptest.NewRequest("POST", "/api/docs/issue", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// No ledger row was written
	var count int64
	db.Model(&models.IssuedDocument{}).Count(&count)
	assert.Zero(t, count)
}

func TestIssueUnknownDocumentType(t *testing.T) {
	db := setupTestDB(t)
	resident, _ := seedDocData(t, db)
	app := newDocApp()

	body := issuePayload(resident.ID)
	body["documentTitle"] = "Nonexistent Certificate"
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/docs/issue", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestIssueInvalidPrice(t *testing.T) {
	db := setupTestDB(t)
	resident, _ := seedDocData(t, db)
	app := newDocApp()

	body := issuePayload(resident.ID)
	body["price"] = "not-a-number"
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/docs/issue", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIssuedListDefaultPageSize(t *testing.T) {
	db := setupTestDB(t)
	resident, clearance := seedDocData(t, db)
	app := newDocApp()

	for i := 0; i < 12; i++ {
		issued := models.IssuedDocument{
			DocumentID:    clearance.ID,
			ResidentID:    resident.ID,
			ControlNumber: fmt.Sprintf("BIMS-list-%04d", i),
			IssuedBy:      "Maria Santos",
			Price:         50,
			IssuedAt:      time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&issued).Error)
	}

	payload, _ := json.Marshal(map[string]interface{}{})
	req := httptest.NewRequest("POST", "/api/docs/issued/read", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Issued     []models.IssuedDocument `json:"issued"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data.Issued, 10)
	assert.EqualValues(t, 12, body.Data.Pagination.Total)
}

func TestCertificateDownload(t *testing.T) {
	db := setupTestDB(t)
	resident, clearance := seedDocData(t, db)
	app := newDocApp()

	issued := models.IssuedDocument{
		DocumentID:    clearance.ID,
		ResidentID:    resident.ID,
		ControlNumber: "BIMS-cert-0001",
		IssuedBy:      "Maria Santos",
		Price:         50,
		Fields:        []byte(`{"purpose":"employment"}`),
		Reason:        "employment requirement",
		IssuedAt:      time.Now(),
	}
	require.NoError(t, db.Create(&issued).Error)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/docs/certificate/%d", issued.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inline")

	buf := make([]byte, 4)
	_, err = resp.Body.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(buf))
}

func TestCertificateUnknownIssuedId(t *testing.T) {
	db := setupTestDB(t)
	seedDocData(t, db)
	app := newDocApp()

	req := httptest.NewRequest("GET", "/api/docs/certificate/424242", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
