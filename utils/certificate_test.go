package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificate(t *testing.T) {
	pdf, err := RenderCertificate("Barangay San Isidro", "City of Tagum", "Davao del Norte", CertificateData{
		DocumentTitle: "Barangay Clearance",
		ControlNumber: "BIMS-test-0001",
		FullName:      "Juan Dela Cruz",
		CivilStatus:   "SINGLE",
		Purok:         "Purok 2",
		Street:        "Mabini Street",
		Price:         50,
		Reason:        "employment requirement",
		IssuedBy:      "Maria Santos",
		IssuedAt:      time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// PDF header magic
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderCertificateUnknownType(t *testing.T) {
	// Unknown document titles fall back to the generic body template.
	pdf, err := RenderCertificate("Barangay San Isidro", "City of Tagum", "Davao del Norte", CertificateData{
		DocumentTitle: "Certificate of Good Moral Character",
		ControlNumber: "BIMS-test-0002",
		FullName:      "Pedro Penduko",
		IssuedBy:      "Maria Santos",
		IssuedAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
