package utils

import (
	"bims/config"
	"bims/database"
	"bims/models"
	"time"

	"github.com/robfig/cron/v3"
)

// SnapshotPopulation writes one PopulationSnapshot row for today. Re-running
// on the same day is a no-op (the snapshot date column is unique).
func SnapshotPopulation() {
	db := database.Database.Db
	today := time.Now().Format("2006-01-02")

	var existing models.PopulationSnapshot
	if err := db.Where("snapshot_on = ?", today).First(&existing).Error; err == nil {
		return
	}

	snapshot := models.PopulationSnapshot{SnapshotOn: today}
	db.Model(&models.Resident{}).Where("is_archived = false").Count(&snapshot.Total)
	db.Model(&models.Resident{}).Where("is_archived = false AND gender = ?", "MALE").Count(&snapshot.Male)
	db.Model(&models.Resident{}).Where("is_archived = false AND gender = ?", "FEMALE").Count(&snapshot.Female)
	db.Model(&models.Resident{}).Where("is_archived = false AND is_voter = true").Count(&snapshot.Voters)
	db.Model(&models.Resident{}).Where("is_archived = true").Count(&snapshot.Archived)

	if err := db.Create(&snapshot).Error; err != nil {
		config.Logger().WithError(err).Error("population snapshot failed")
		return
	}

	config.Logger().WithField("total", snapshot.Total).WithField("date", today).Info("population snapshot recorded")
}

// StartStatsScheduler runs the nightly population snapshot job.
func StartStatsScheduler() *cron.Cron {
	c := cron.New()

	// Midnight, server local time
	c.AddFunc("0 0 * * *", SnapshotPopulation)

	c.Start()
	config.Logger().Info("population stats scheduler started")
	return c
}
