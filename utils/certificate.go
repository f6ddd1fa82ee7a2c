package utils

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// CertificateData carries every variable a certificate template can reference.
type CertificateData struct {
	DocumentTitle string
	ControlNumber string
	FullName      string
	CivilStatus   string
	Purok         string
	Street        string
	YearsStay     int
	Price         float64
	Reason        string
	Fields        map[string]string
	IssuedBy      string
	IssuedAt      time.Time
}

// Certificate body templates keyed by document title. Variables use the
// [NAME] delimiter convention.
var certificateBodies = map[string]string{
	"Barangay Clearance": "This is to certify that [NAME], of legal age, [CIVIL_STATUS], and a resident of [STREET], [PUROK], has no derogatory record on file in this barangay.\n\nThis clearance is issued upon the request of the above-named person for [REASON].",
	"Certificate of Residency": "This is to certify that [NAME], of legal age, [CIVIL_STATUS], is a bona fide resident of [STREET], [PUROK], and has been residing in this barangay for [YEARS_STAY] year(s).\n\nThis certification is issued upon the request of the above-named person for [REASON].",
	"Certificate of Indigency": "This is to certify that [NAME], of legal age, [CIVIL_STATUS], and a resident of [STREET], [PUROK], belongs to an indigent family in this barangay.\n\nThis certification is issued upon the request of the above-named person for [REASON].",
	"Business Permit": "This is to certify that the business named [BUSINESS_NAME] located at [BUSINESS_ADDRESS], owned and operated by [NAME], is hereby granted permit to operate within the territorial jurisdiction of this barangay.\n\nIssued upon payment of the required fee for [REASON].",
}

const defaultCertificateBody = "This is to certify that [NAME], a resident of [STREET], [PUROK], is issued this [DOCUMENT_TITLE] upon request for [REASON]."

// FillTemplate substitutes [VARIABLE] tokens. Unset variables render as a
// single space so the output never shows a literal placeholder token.
func FillTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		if value == "" {
			value = " "
		}
		pairs = append(pairs, "["+key+"]", value)
	}
	filled := strings.NewReplacer(pairs...).Replace(template)

	// Sweep any token the caller did not provide.
	for {
		start := strings.Index(filled, "[")
		if start < 0 {
			break
		}
		end := strings.Index(filled[start:], "]")
		if end < 0 {
			break
		}
		filled = filled[:start] + " " + filled[start+end+1:]
	}
	return filled
}

// templateVars flattens certificate data into the substitution map.
func templateVars(data CertificateData) map[string]string {
	vars := map[string]string{
		"NAME":           data.FullName,
		"CIVIL_STATUS":   strings.ToLower(data.CivilStatus),
		"PUROK":          data.Purok,
		"STREET":         data.Street,
		"YEARS_STAY":     fmt.Sprintf("%d", data.YearsStay),
		"REASON":         data.Reason,
		"DOCUMENT_TITLE": data.DocumentTitle,
		"DATE":           FormatCertificateDate(data.IssuedAt),
	}
	for key, value := range data.Fields {
		// businessName -> BUSINESS_NAME
		vars[camelToToken(key)] = value
	}
	return vars
}

func camelToToken(key string) string {
	var out strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('_')
		}
		out.WriteRune(r)
	}
	return strings.ToUpper(out.String())
}

// RenderCertificate fills the template for the document type and converts it
// to a PDF. The control number is embedded both as text and as a QR code so
// the certificate can be verified against the ledger.
func RenderCertificate(barangay, municipality, province string, data CertificateData) ([]byte, error) {
	body, ok := certificateBodies[data.DocumentTitle]
	if !ok {
		body = defaultCertificateBody
	}
	text := FillTemplate(body, templateVars(data))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(data.DocumentTitle, false)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Times", "", 11)
	pdf.CellFormat(0, 5, "Republic of the Philippines", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Province of %s", province), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, municipality, "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(0, 6, strings.ToUpper(barangay), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Times", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(data.DocumentTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Times", "", 12)
	pdf.CellFormat(0, 6, "TO WHOM IT MAY CONCERN:", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.MultiCell(0, 6, text, "", "J", false)
	pdf.Ln(4)

	issuedLine := fmt.Sprintf("Issued this %s at %s, %s.", FormatCertificateDate(data.IssuedAt), barangay, municipality)
	pdf.MultiCell(0, 6, issuedLine, "", "L", false)
	if data.Price > 0 {
		pdf.MultiCell(0, 6, fmt.Sprintf("O.R. Amount: PHP %.2f", data.Price), "", "L", false)
	}
	pdf.Ln(14)

	// Signature block
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(0, 6, strings.ToUpper(data.IssuedBy), "", 1, "R", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(0, 5, "Punong Barangay / Authorized Signatory", "", 1, "R", false, 0, "")

	// Verification QR of the control number
	png, err := qrcode.Encode(data.ControlNumber, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification QR: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("control-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("control-qr", 20, 245, 30, 30, false, opts, 0, "")
	pdf.SetFont("Times", "", 8)
	pdf.SetXY(20, 276)
	pdf.CellFormat(30, 4, data.ControlNumber, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
