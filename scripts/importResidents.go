package main

import (
	"bims/config"
	"bims/database"
	"bims/models"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// One-off importer for migrating resident records out of the old
// spreadsheet masterlist. Usage: go run scripts/importResidents.go residents.csv
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "residents.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%500 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		resident := models.Resident{
			FirstName:   getField(row, headerIndex, "firstName"),
			MiddleName:  getField(row, headerIndex, "middleName"),
			LastName:    getField(row, headerIndex, "lastName"),
			Suffix:      getField(row, headerIndex, "suffix"),
			Gender:      strings.ToUpper(getField(row, headerIndex, "gender")),
			BirthDate:   parseDate(getField(row, headerIndex, "birthDate")),
			BirthPlace:  getField(row, headerIndex, "birthPlace"),
			CivilStatus: strings.ToUpper(getField(row, headerIndex, "civilStatus")),
			IsVoter:     strings.EqualFold(getField(row, headerIndex, "isVoter"), "yes"),
		}

		if resident.FirstName == "" || resident.LastName == "" {
			skipped++
			continue
		}
		if resident.CivilStatus == "" {
			resident.CivilStatus = "SINGLE"
		}

		// Same name and birth date means the row was already imported
		var existing models.Resident
		result := database.Database.Db.Where(
			"first_name = ? AND last_name = ? AND birth_date = ?",
			resident.FirstName, resident.LastName, resident.BirthDate,
		).First(&existing)
		if result.Error == nil {
			skipped++
			continue
		}

		txErr := database.Database.Db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&resident).Error; err != nil {
				return err
			}
			address := models.Address{
				ResidentID: resident.ID,
				HouseNo:    getField(row, headerIndex, "houseNo"),
				Purok:      getField(row, headerIndex, "purok"),
				YearsStay:  parseInt(getField(row, headerIndex, "yearsStay")),
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			contact := models.Contact{
				ResidentID: resident.ID,
				Mobile:     getField(row, headerIndex, "mobile"),
				Telephone:  getField(row, headerIndex, "telephone"),
				Email:      getField(row, headerIndex, "email"),
			}
			return tx.Create(&contact).Error
		})
		if txErr != nil {
			log.Printf("Error inserting resident %s %s: %v", resident.FirstName, resident.LastName, txErr)
			continue
		}
		inserted++
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseDate accepts the date formats seen in the old masterlist
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
