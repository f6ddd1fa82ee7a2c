package incidentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	incidentController "bims/controllers/incident"
	"bims/database"
	"bims/models"
	incidentValidator "bims/validators/incident"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Incident{},
		&models.IncidentNarrative{},
	)
	require.NoError(t, err)

	database.Database = database.DbInstance{Db: db}
	return db
}

func newIncidentApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/incident/", incidentValidator.Create(), incidentController.Create)
	app.Post("/api/incident/narrative", incidentValidator.AddNarrative(), incidentController.AddNarrative)
	return app
}

func createIncident(t *testing.T, app *fiber.App, title string) string {
	t.Helper()
	payload, _ := json.Marshal(map[string]interface{}{
		"title":      title,
		"report":     "Initial report for " + title,
		"recordedBy": "Desk Officer",
	})
	req := httptest.NewRequest("POST", "/api/incident/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Data struct {
			CaseNumber string `json:"caseNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data.CaseNumber
}

func TestCreateAssignsSequentialCaseNumbers(t *testing.T) {
	db := setupTestDB(t)
	app := newIncidentApp()

	year := time.Now().Year()
	first := createIncident(t, app, "Noise complaint")
	second := createIncident(t, app, "Boundary dispute")

	assert.Equal(t, fmt.Sprintf("BLT-%d-0001", year), first)
	assert.Equal(t, fmt.Sprintf("BLT-%d-0002", year), second)

	// First narrative is recorded in the same transaction
	var count int64
	db.Model(&models.IncidentNarrative{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestCreateContinuesAfterLastCaseNumber(t *testing.T) {
	db := setupTestDB(t)
	app := newIncidentApp()

	// A ledger with gaps still yields a fresh number past the highest one
	year := time.Now().Year()
	seeded := models.Incident{
		CaseNumber: fmt.Sprintf("BLT-%d-0007", year),
		Title:      "Seeded case",
	}
	require.NoError(t, db.Create(&seeded).Error)

	caseNumber := createIncident(t, app, "Stray animal report")
	assert.Equal(t, fmt.Sprintf("BLT-%d-0008", year), caseNumber)
}

func TestAddNarrativeUnknownIncident(t *testing.T) {
	setupTestDB(t)
	app := newIncidentApp()

	payload, _ := json.Marshal(map[string]interface{}{
		"incidentId": 4242,
		"report":     "Follow-up visit",
	})
	req := httptest.NewRequest("POST", "/api/incident/narrative", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
