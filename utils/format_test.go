package utils

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		31: "31st",
	}
	for day, expected := range cases {
		assert.Equal(t, expected, OrdinalSuffix(day))
	}
}

func TestAbbreviateDocumentTitle(t *testing.T) {
	assert.Equal(t, "Brgy. Clearance", AbbreviateDocumentTitle("Barangay Clearance"))
	assert.Equal(t, "Residency", AbbreviateDocumentTitle("Certificate of Residency"))
	assert.Equal(t, "Indigency", AbbreviateDocumentTitle("Certificate of Indigency"))
	assert.Equal(t, "Business Permit", AbbreviateDocumentTitle("Business Permit"))

	// Unknown titles truncate to the first 15 characters
	assert.Equal(t, "Certificate of ", AbbreviateDocumentTitle("Certificate of Good Moral Character"))
	assert.Equal(t, "Short Title", AbbreviateDocumentTitle("Short Title"))

	// Truncation counts runes, not bytes
	truncated := AbbreviateDocumentTitle(strings.Repeat("ñ", 17))
	assert.Equal(t, strings.Repeat("ñ", 15), truncated)
	assert.True(t, utf8.ValidString(truncated))
}

func TestFormatCertificateDate(t *testing.T) {
	date := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "1st day of Sep, 2026", FormatCertificateDate(date))

	date = time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "22nd day of Dec, 2025", FormatCertificateDate(date))
}

func TestFormatPeso(t *testing.T) {
	assert.Equal(t, "₱50.00", FormatPeso(50))
	assert.Equal(t, "₱1,250.00", FormatPeso(1250))
	assert.Equal(t, "₱1,234,567.89", FormatPeso(1234567.89))
	assert.Equal(t, "₱0.00", FormatPeso(0))
	assert.Equal(t, "₱0.50", FormatPeso(0.5))

	// Cents that round up to a whole peso carry into the whole part
	assert.Equal(t, "₱50.00", FormatPeso(49.999))
	assert.Equal(t, "₱1.00", FormatPeso(0.999))
	assert.Equal(t, "₱49.99", FormatPeso(49.994))
}

func TestFillTemplate(t *testing.T) {
	filled := FillTemplate("Hello [NAME], from [PUROK].", map[string]string{
		"NAME":  "Juan Dela Cruz",
		"PUROK": "Purok 2",
	})
	assert.Equal(t, "Hello Juan Dela Cruz, from Purok 2.", filled)
}

func TestFillTemplateUnsetVariables(t *testing.T) {
	// Empty values and missing tokens render as a single space, never as a
	// literal placeholder.
	filled := FillTemplate("issued for [REASON] at [UNKNOWN_TOKEN]", map[string]string{
		"REASON": "",
	})
	assert.NotContains(t, filled, "[")
	assert.NotContains(t, filled, "]")
	assert.Equal(t, "issued for   at  ", filled)
}
