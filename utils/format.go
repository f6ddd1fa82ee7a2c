package utils

import (
	"fmt"
	"math"
	"time"
)

// documentAbbreviations maps the four standard certificate titles to the
// short labels shown in the activity feed.
var documentAbbreviations = map[string]string{
	"Barangay Clearance":       "Brgy. Clearance",
	"Certificate of Residency": "Residency",
	"Certificate of Indigency": "Indigency",
	"Business Permit":          "Business Permit",
}

// AbbreviateDocumentTitle returns the feed label for a certificate title.
// Unknown titles fall back to the first 15 characters.
func AbbreviateDocumentTitle(title string) string {
	if abbr, ok := documentAbbreviations[title]; ok {
		return abbr
	}
	if runes := []rune(title); len(runes) > 15 {
		return string(runes[:15])
	}
	return title
}

// OrdinalSuffix returns the day number with its English ordinal suffix
// (1st, 2nd, 3rd, 4th, ... 11th, 21st).
func OrdinalSuffix(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
		// teens always take "th"
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// FormatCertificateDate renders a timestamp the way it appears on certificate
// bodies, e.g. "5th day of Sep, 2026".
func FormatCertificateDate(t time.Time) string {
	return fmt.Sprintf("%s day of %s, %d", OrdinalSuffix(t.Day()), t.Format("Jan"), t.Year())
}

// FormatDisplayDate renders a timestamp for the activity feed.
func FormatDisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// FormatPeso renders an amount as a peso string with thousands separators,
// e.g. "₱1,250.00".
func FormatPeso(amount float64) string {
	// Round to centavos once so the cents part can never reach 100
	totalCents := int64(math.Round(amount * 100))
	whole := totalCents / 100
	cents := totalCents % 100
	if cents < 0 {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", whole)
	grouped := ""
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 && digits[0] != '-' {
			grouped += ","
		}
		grouped += string(d)
	}
	return fmt.Sprintf("₱%s.%02d", grouped, cents)
}
