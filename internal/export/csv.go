package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
)

// BOM lets spreadsheet applications detect UTF-8.
const BOM = "\ufeff"

// ContentType of the download body.
const ContentType = "text/csv; charset=utf-8"

// es-MX short date, day and month without padding
const dateLayout = "2/1/2006"

var Header = []string{
	"Nombre",
	"Teléfono",
	"Email",
	"Puesto",
	"Estado",
	"Fecha de Postulación",
}

// CandidatesCSV renders candidates in the given order. Every cell is quoted;
// embedded quotes are doubled. Dates are rendered in loc.
func CandidatesCSV(candidates []model.Candidate, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	lines := make([]string, 0, len(candidates)+1)
	lines = append(lines, row(Header))
	for _, c := range candidates {
		lines = append(lines, row([]string{
			c.Name,
			c.Phone,
			c.Email,
			c.Position,
			pkg.CapitalizeFirst(string(c.Status)),
			c.AppliedAt.In(loc).Format(dateLayout),
		}))
	}
	return strings.Join(lines, "\n")
}

// WithBOM prefixes a CSV document for download.
func WithBOM(csv string) []byte {
	return []byte(BOM + csv)
}

// FileName is the download name for a company's export.
func FileName(companyName string) string {
	return fmt.Sprintf("candidatos-%s.csv", pkg.Slugify(companyName))
}

func row(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
