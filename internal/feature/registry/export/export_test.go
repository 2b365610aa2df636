package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry_backend/internal/feature/registry/domain/entity"
)

func record(tracking, fullName string) entity.Professional {
	return entity.Professional{
		ID:                 99, // database ids must not leak into roll numbers
		TrackingNumber:     tracking,
		FullName:           fullName,
		Gender:             "Male",
		DateOfRegistration: time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
		PhoneNumber:        "0911000000",
		ProfessionalTitle:  "Engineer",
		ProfessionalNumber: "PN-1",
		Sector:             "Construction",
		ServiceType:        entity.ServiceNew,
	}
}

func TestCSV(t *testing.T) {
	t.Run("empty register is the BOM plus the header row", func(t *testing.T) {
		got := CSV(nil)

		assert.True(t, strings.HasPrefix(got, "\ufeff"), "document should start with a UTF-8 BOM")
		assert.Equal(t,
			"\ufeff"+`"Roll No.","Tracking Number","Full Name","Gender","Phone Number","Professional Title","Professional Number","Sector","Service Type","Date of Registration"`,
			got)
		assert.False(t, strings.HasSuffix(got, "\n"), "document must not end with a newline")
	})

	t.Run("roll numbers restart from 1 in list order", func(t *testing.T) {
		got := CSV([]entity.Professional{
			record("T-1", "John Doe"),
			record("T-2", "Jane Roe"),
		})

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 3, "header plus one line per record")
		assert.True(t, strings.HasPrefix(lines[1], `"1","T-1"`), "first row should carry roll number 1")
		assert.True(t, strings.HasPrefix(lines[2], `"2","T-2"`), "second row should carry roll number 2")
		assert.NotContains(t, got, `"99"`, "database ids must not appear")
	})

	t.Run("every field is quoted and the date uses ISO form", func(t *testing.T) {
		got := CSV([]entity.Professional{record("T-1", "John Doe")})

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t,
			`"1","T-1","John Doe","Male","0911000000","Engineer","PN-1","Construction","New","2023-05-17"`,
			lines[1])
	})

	t.Run("embedded quotes are doubled", func(t *testing.T) {
		got := CSV([]entity.Professional{record("T-1", `John "Johnny" Doe`)})

		assert.Contains(t, got, `"John ""Johnny"" Doe"`, "quotes inside a field must be doubled")
	})

	t.Run("commas and newlines stay inside their quoted field", func(t *testing.T) {
		got := CSV([]entity.Professional{record("T-1", "Doe, John")})

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], `"Doe, John"`)
	})
}
