package logsController

import (
	"bims/database"
	"bims/middleware"
	"bims/models"
	"bims/utils"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Event sources, also the equal-timestamp tiebreak order.
const (
	sourceResident = iota
	sourceDocument
	sourceIncident
)

// ActivityEntry is one row of the activity feed.
type ActivityEntry struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Date        string `json:"date"`

	occurredAt time.Time
	source     int
	rowID      uint
}

// BuildActivityFeed merges the three event producers, sorts on the composite
// (occurred_at DESC, source, id DESC) key and slices out the requested page.
// The tiebreak keeps pagination deterministic at equal timestamps.
func BuildActivityFeed(db *gorm.DB, page, limit int, residentID *uint) ([]ActivityEntry, error) {
	// Each producer fetches enough rows to cover the requested page even if
	// the whole page came from one source.
	fetch := page * limit

	events := make([]ActivityEntry, 0, fetch*3)
	for _, produce := range []func(*gorm.DB, int, *uint) ([]ActivityEntry, error){
		residentEvents,
		documentEvents,
		incidentEvents,
	} {
		batch, err := produce(db, fetch, residentID)
		if err != nil {
			return nil, err
		}
		events = append(events, batch...)
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].occurredAt.Equal(events[j].occurredAt) {
			return events[i].occurredAt.After(events[j].occurredAt)
		}
		if events[i].source != events[j].source {
			return events[i].source < events[j].source
		}
		return events[i].rowID > events[j].rowID
	})

	offset := (page - 1) * limit
	if offset >= len(events) {
		return []ActivityEntry{}, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	return events[offset:end], nil
}

func residentEvents(db *gorm.DB, fetch int, residentID *uint) ([]ActivityEntry, error) {
	query := db.Model(&models.Resident{})
	if residentID != nil {
		query = query.Where("id = ?", *residentID)
	}

	var residents []models.Resident
	if err := query.Order("created_at DESC, id DESC").Limit(fetch).Find(&residents).Error; err != nil {
		return nil, err
	}

	events := make([]ActivityEntry, 0, len(residents))
	for _, r := range residents {
		events = append(events, ActivityEntry{
			Label:       "New Resident",
			Description: fmt.Sprintf("%s was registered as a resident", r.FullName()),
			Date:        utils.FormatDisplayDate(r.CreatedAt),
			occurredAt:  r.CreatedAt,
			source:      sourceResident,
			rowID:       r.ID,
		})
	}
	return events, nil
}

func documentEvents(db *gorm.DB, fetch int, residentID *uint) ([]ActivityEntry, error) {
	query := db.Model(&models.IssuedDocument{}).Preload("Document").Preload("Resident")
	if residentID != nil {
		query = query.Where("resident_id = ?", *residentID)
	}

	var issued []models.IssuedDocument
	if err := query.Order("issued_at DESC, id DESC").Limit(fetch).Find(&issued).Error; err != nil {
		return nil, err
	}

	events := make([]ActivityEntry, 0, len(issued))
	for _, row := range issued {
		events = append(events, ActivityEntry{
			Label:       utils.AbbreviateDocumentTitle(row.Document.Title),
			Description: fmt.Sprintf("%s issued to %s for %s", row.Document.Title, row.Resident.FullName(), utils.FormatPeso(row.Price)),
			Date:        utils.FormatDisplayDate(row.IssuedAt),
			occurredAt:  row.IssuedAt,
			source:      sourceDocument,
			rowID:       row.ID,
		})
	}
	return events, nil
}

func incidentEvents(db *gorm.DB, fetch int, residentID *uint) ([]ActivityEntry, error) {
	query := db.Model(&models.IncidentNarrative{}).
		Joins("JOIN incidents ON incidents.id = incident_narratives.incident_id")
	if residentID != nil {
		query = query.Where("incidents.resident_id = ?", *residentID)
	}

	type narrativeRow struct {
		models.IncidentNarrative
		CaseNumber string
		Title      string
	}
	var narratives []narrativeRow
	if err := query.Select("incident_narratives.*, incidents.case_number, incidents.title").
		Order("incident_narratives.reported_at DESC, incident_narratives.id DESC").
		Limit(fetch).
		Scan(&narratives).Error; err != nil {
		return nil, err
	}

	// The earliest narrative per case is the initial report, the rest are
	// updates.
	type firstRow struct {
		IncidentID uint
		MinID      uint
	}
	var firsts []firstRow
	if err := db.Model(&models.IncidentNarrative{}).
		Select("incident_id, MIN(id) AS min_id").
		Group("incident_id").
		Scan(&firsts).Error; err != nil {
		return nil, err
	}
	firstByIncident := make(map[uint]uint, len(firsts))
	for _, f := range firsts {
		firstByIncident[f.IncidentID] = f.MinID
	}

	events := make([]ActivityEntry, 0, len(narratives))
	for _, n := range narratives {
		label := "Incident Update"
		if firstByIncident[n.IncidentID] == n.ID {
			label = "New Incident"
		}
		events = append(events, ActivityEntry{
			Label:       label,
			Description: fmt.Sprintf("%s: %s", n.CaseNumber, n.Title),
			Date:        utils.FormatDisplayDate(n.ReportedAt),
			occurredAt:  n.ReportedAt,
			source:      sourceIncident,
			rowID:       n.ID,
		})
	}
	return events, nil
}

// Read serves the activity feed, default page size 25.
func Read(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogsRead").(*ReadRequest)
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

	entries, err := BuildActivityFeed(database.Database.Db, page, limit, reqData.ResidentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity logs!", nil)
	}

	// An empty page is still a success: page 1 means no activity yet, later
	// pages mean the feed is exhausted.
	message := "Activity logs."
	if len(entries) == 0 {
		message = "No activity to show."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"logs": entries,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
		},
	})
}

// ReadRequest is the feed query payload, validated upstream.
type ReadRequest struct {
	Page       *int  `json:"page" validate:"omitempty,min=1"`
	Limit      *int  `json:"limit" validate:"omitempty,min=1,max=100"`
	ResidentID *uint `json:"residentId"`
}
