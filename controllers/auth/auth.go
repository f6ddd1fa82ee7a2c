package authController

import (
	"bims/config"
	"bims/database"
	"bims/middleware"
	"bims/models"
	"bims/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var account models.Account
	if err := database.Database.Db.Preload("Resident").
		Where("username = ? AND is_deleted = ?", reqData.Username, false).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(account.ID, account.Username, account.Role, account.Resident.FullName())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Session token travels in an HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	now := time.Now()
	account.LastLogin = &now
	database.Database.Db.Save(&account)

	tracking := models.LoginTracking{
		AccountID: account.ID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording login: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":    token,
		"authId":   account.ID,
		"username": account.Username,
		"role":     account.Role,
		"fullName": account.Resident.FullName(),
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// Session echoes the claims of the current token for the UI quick-access menu.
func Session(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active session.", fiber.Map{
		"authId":   c.Locals("accountId"),
		"role":     c.Locals("role"),
		"fullName": c.Locals("fullName"),
	})
}

// AccountList returns every active account. The response shape is the
// contract the account pages consume: 404 when the table is empty, otherwise
// an array of {auth_id, full_name, image_base64, role}.
func AccountList(c *fiber.Ctx) error {
	var accounts []models.Account
	if err := database.Database.Db.Preload("Resident").
		Where("is_deleted = ?", false).
		Find(&accounts).Error; err != nil {
		log.Printf("Error fetching accounts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	if len(accounts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No users found"})
	}

	out := make([]fiber.Map, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, fiber.Map{
			"auth_id":      account.ID,
			"full_name":    account.Resident.FullName(),
			"image_base64": account.ImageBase64,
			"role":         account.Role,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": out})
}

func CreateAccount(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccount").(*AccountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var resident models.Resident
	if err := db.Where("id = ? AND is_archived = ?", reqData.ResidentID, false).First(&resident).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resident not found!", nil)
	}

	if err := db.Where("username = ?", reqData.Username).First(&models.Account{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	account := models.Account{
		ResidentID:  reqData.ResidentID,
		Username:    reqData.Username,
		Password:    string(hashedPassword),
		Role:        reqData.Role,
		ImageBase64: resident.PhotoBase64,
	}
	if err := db.Create(&account).Error; err != nil {
		log.Printf("Error saving account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	go func(email, fullName, username, password string) {
		if err := utils.SendAccountEmail(email, fullName, username, password); err != nil {
			log.Printf("Error sending account email: %v", err)
		}
	}(reqData.Email, resident.FullName(), reqData.Username, reqData.Password)

	account.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully.", account)
}

func LoginHistoryList(c *fiber.Ctx) error {
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLoginHistory").(*PageRequest)
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

	var history []models.LoginTracking
	var total int64

	if err := database.Database.Db.Where("account_id = ?", accountId).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	database.Database.Db.Model(&models.LoginTracking{}).Where("account_id = ?", accountId).Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", fiber.Map{
		"history": history,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Request payloads, validated by the auth validators before the handlers run.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type AccountRequest struct {
	ResidentID uint   `json:"residentId" validate:"required"`
	Username   string `json:"username" validate:"required,min=4"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=ADMIN STAFF"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type PageRequest struct {
	Page  *int `json:"page" validate:"omitempty,min=1"`
	Limit *int `json:"limit" validate:"omitempty,min=1,max=100"`
}
