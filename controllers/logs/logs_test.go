package logsController

import (
	"bims/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database and migrates the feed models.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Resident{},
		&models.Address{},
		&models.Contact{},
		&models.Document{},
		&models.IssuedDocument{},
		&models.Incident{},
		&models.IncidentNarrative{},
	)
	require.NoError(t, err)
	return db
}

func seedFeedData(t *testing.T, db *gorm.DB) {
	base := time.Date(2026, time.August, 1, 8, 0, 0, 0, time.UTC)

	residents := []models.Resident{
		{FirstName: "Juan", LastName: "Dela Cruz", Gender: "MALE"},
		{FirstName: "Maria", LastName: "Santos", Gender: "FEMALE"},
	}
	for i := range residents {
		residents[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(&residents[i]).Error)
	}

	clearance := models.Document{Title: "Barangay Clearance", Price: 50}
	require.NoError(t, db.Create(&clearance).Error)

	issued := models.IssuedDocument{
		DocumentID:    clearance.ID,
		ResidentID:    residents[0].ID,
		ControlNumber: "BIMS-feed-0001",
		IssuedBy:      "Maria Santos",
		Price:         50,
		IssuedAt:      base.Add(5 * time.Hour),
	}
	require.NoError(t, db.Create(&issued).Error)

	incident := models.Incident{CaseNumber: "BLT-2026-0001", Title: "Noise complaint", ResidentID: &residents[1].ID}
	require.NoError(t, db.Create(&incident).Error)

	first := models.IncidentNarrative{IncidentID: incident.ID, Report: "initial report", ReportedAt: base.Add(2 * time.Hour)}
	require.NoError(t, db.Create(&first).Error)
	update := models.IncidentNarrative{IncidentID: incident.ID, Report: "follow up", ReportedAt: base.Add(6 * time.Hour)}
	require.NoError(t, db.Create(&update).Error)
}

func TestBuildActivityFeedOrdering(t *testing.T) {
	db := setupTestDB(t)
	seedFeedData(t, db)

	entries, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// Reverse chronological: incident update (6h), issuance (5h),
	// incident open (2h), resident #2 (1h), resident #1 (0h).
	assert.Equal(t, "Incident Update", entries[0].Label)
	assert.Equal(t, "Brgy. Clearance", entries[1].Label)
	assert.Equal(t, "New Incident", entries[2].Label)
	assert.Equal(t, "New Resident", entries[3].Label)
	assert.Equal(t, "New Resident", entries[4].Label)
}

func TestBuildActivityFeedLabels(t *testing.T) {
	db := setupTestDB(t)
	seedFeedData(t, db)

	entries, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)

	var issuance ActivityEntry
	for _, entry := range entries {
		if entry.Label == "Brgy. Clearance" {
			issuance = entry
		}
	}
	// Abbreviated label, full title and peso amount in the description
	assert.Contains(t, issuance.Description, "Barangay Clearance")
	assert.Contains(t, issuance.Description, "Juan Dela Cruz")
	assert.Contains(t, issuance.Description, "₱50.00")
}

func TestBuildActivityFeedPagination(t *testing.T) {
	db := setupTestDB(t)
	seedFeedData(t, db)

	full, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)

	// Concatenating pages of 2 reproduces the single sorted union.
	var paged []ActivityEntry
	for page := 1; ; page++ {
		batch, err := BuildActivityFeed(db, page, 2, nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(batch), 2)
		if len(batch) == 0 {
			break
		}
		paged = append(paged, batch...)
	}
	assert.Equal(t, full, paged)
}

func TestBuildActivityFeedResidentFilter(t *testing.T) {
	db := setupTestDB(t)
	seedFeedData(t, db)

	var resident models.Resident
	require.NoError(t, db.Where("first_name = ?", "Juan").First(&resident).Error)

	entries, err := BuildActivityFeed(db, 1, 25, &resident.ID)
	require.NoError(t, err)

	// Juan's registration and his clearance; Maria's incident is excluded.
	require.Len(t, entries, 2)
	assert.Equal(t, "Brgy. Clearance", entries[0].Label)
	assert.Equal(t, "New Resident", entries[1].Label)
}

func TestBuildActivityFeedEmpty(t *testing.T) {
	db := setupTestDB(t)

	entries, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Later pages past the end are empty, not an error
	entries, err = BuildActivityFeed(db, 5, 25, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuildActivityFeedEqualTimestamps(t *testing.T) {
	db := setupTestDB(t)

	when := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"Ana", "Ben", "Carla"} {
		r := models.Resident{FirstName: name, LastName: "Reyes", Gender: "FEMALE"}
		r.CreatedAt = when
		require.NoError(t, db.Create(&r).Error)
	}

	// The (source, id) tiebreak keeps the order stable across calls
	first, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)
	second, err := BuildActivityFeed(db, 1, 25, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Higher row ids sort first within the same timestamp
	assert.Contains(t, first[0].Description, "Carla")
	assert.Contains(t, first[2].Description, "Ana")
}
