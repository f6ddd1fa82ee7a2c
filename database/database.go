package database

import (
	"bims/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a pooled connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	RunMigrations(db)

	// Seed the lookup reference tables
	seedLookups(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Resident{},
		&models.Address{},
		&models.Contact{},
		&models.Occupation{},
		&models.Nationality{},
		&models.Religion{},
		&models.Benefit{},
		&models.Street{},
		&models.Document{},
		&models.IssuedDocument{},
		&models.OfficerBatch{},
		&models.Officer{},
		&models.Account{},
		&models.LoginTracking{},
		&models.Incident{},
		&models.IncidentNarrative{},
		&models.PopulationSnapshot{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedLookups inserts the static reference rows when the tables are empty.
func seedLookups(db *gorm.DB) {
	var count int64

	db.Model(&models.Occupation{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"Farmer", "Fisherman", "Driver", "Vendor", "Teacher", "Government Employee", "Private Employee", "Self-Employed", "Unemployed", "Student", "Retired"} {
			db.Create(&models.Occupation{Name: name})
		}
	}

	db.Model(&models.Nationality{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"Filipino", "Chinese", "American", "Japanese", "Korean", "Indian"} {
			db.Create(&models.Nationality{Name: name})
		}
	}

	db.Model(&models.Religion{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"Roman Catholic", "Islam", "Iglesia ni Cristo", "Protestant", "Born Again Christian", "Buddhist", "None"} {
			db.Create(&models.Religion{Name: name})
		}
	}

	db.Model(&models.Benefit{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"4Ps", "Senior Citizen Pension", "PWD Assistance", "Solo Parent", "None"} {
			db.Create(&models.Benefit{Name: name})
		}
	}

	db.Model(&models.Street{}).Count(&count)
	if count == 0 {
		streets := []models.Street{
			{Name: "Mabini Street", Purok: "Purok 1"},
			{Name: "Rizal Avenue", Purok: "Purok 1"},
			{Name: "Bonifacio Street", Purok: "Purok 2"},
			{Name: "Luna Street", Purok: "Purok 3"},
			{Name: "Aguinaldo Street", Purok: "Purok 4"},
			{Name: "Del Pilar Street", Purok: "Purok 5"},
		}
		for i := range streets {
			db.Create(&streets[i])
		}
	}

	db.Model(&models.Document{}).Count(&count)
	if count == 0 {
		docTypes := []models.Document{
			{Title: "Barangay Clearance", Price: 50, RequiredFields: []byte(`["purpose"]`)},
			{Title: "Certificate of Residency", Price: 30, RequiredFields: []byte(`["yearsOfStay"]`)},
			{Title: "Certificate of Indigency", Price: 0, RequiredFields: []byte(`["purpose"]`)},
			{Title: "Business Permit", Price: 200, RequiredFields: []byte(`["businessName","businessAddress"]`)},
		}
		for i := range docTypes {
			db.Create(&docTypes[i])
		}
	}
}
