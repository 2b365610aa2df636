// Package export renders registration records as a spreadsheet-friendly
// CSV document.
package export

import (
	"strconv"
	"strings"

	"registry_backend/internal/feature/registry/domain/entity"
)

// utf8BOM lets Excel detect the encoding when the file is opened directly.
const utf8BOM = "\ufeff"

const dateLayout = "2006-01-02"

var headers = []string{
	"Roll No.",
	"Tracking Number",
	"Full Name",
	"Gender",
	"Phone Number",
	"Professional Title",
	"Professional Number",
	"Sector",
	"Service Type",
	"Date of Registration",
}

// CSV renders the records in list order. Every field is quoted, embedded
// quotes are doubled, and the roll number restarts from 1 regardless of
// database IDs. The document carries no trailing newline.
func CSV(ps []entity.Professional) string {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRow(&b, headers)
	for i, p := range ps {
		b.WriteByte('\n')
		writeRow(&b, []string{
			strconv.Itoa(i + 1),
			p.TrackingNumber,
			p.FullName,
			p.Gender,
			p.PhoneNumber,
			p.ProfessionalTitle,
			p.ProfessionalNumber,
			p.Sector,
			p.ServiceType,
			p.DateOfRegistration.Format(dateLayout),
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
