package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"bims/config"
	authController "bims/controllers/auth"
	"bims/database"
	"bims/middleware"
	"bims/models"
	authValidator "bims/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
		&models.Account{},
		&models.LoginTracking{},
	)
	require.NoError(t, err)

	database.Database = database.DbInstance{Db: db}
	config.LoadConfig()
	return db
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/login", authValidator.Login(), authController.Login)
	app.Post("/api/auth/accounts/read", authController.AccountList)
	return app
}

func seedAccount(t *testing.T, db *gorm.DB) models.Account {
	resident := models.Resident{FirstName: "Maria", LastName: "Santos", Gender: "FEMALE"}
	require.NoError(t, db.Create(&resident).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	account := models.Account{
		ResidentID:  resident.ID,
		Username:    "msantos",
		Password:    string(hashed),
		Role:        "ADMIN",
		ImageBase64: "photo-data",
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func TestAccountListEmpty(t *testing.T) {
	setupTestDB(t)
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/accounts/read", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No users found", body["error"])
}

func TestAccountListSingle(t *testing.T) {
	db := setupTestDB(t)
	seedAccount(t, db)
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/accounts/read", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)

	entry := body.Data[0]
	assert.EqualValues(t, 1, entry["auth_id"])
	assert.Equal(t, "Maria Santos", entry["full_name"])
	assert.Equal(t, "photo-data", entry["image_base64"])
	assert.Equal(t, "ADMIN", entry["role"])
}

func TestLoginSetsSessionCookie(t *testing.T) {
	db := setupTestDB(t)
	seedAccount(t, db)
	app := newAuthApp()

	payload, _ := json.Marshal(map[string]string{
		"username": "msantos",
		"password": "secret-password",
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Session token travels in the HTTP-only cookie
	cookies := resp.Header.Values("Set-Cookie")
	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], middleware.TokenCookie+"=")
	assert.Contains(t, cookies[0], "HttpOnly")

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ADMIN", data["role"])
	assert.NotEmpty(t, data["token"])

	// A login row lands in the tracking table
	var trackingCount int64
	db.Model(&models.LoginTracking{}).Count(&trackingCount)
	assert.EqualValues(t, 1, trackingCount)
}

func TestLoginBadPassword(t *testing.T) {
	db := setupTestDB(t)
	seedAccount(t, db)
	app := newAuthApp()

	payload, _ := json.Marshal(map[string]string{
		"username": "msantos",
		"password": "wrong-password",
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
