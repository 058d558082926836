package export

import (
	"strings"
	"testing"
	"time"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/stretchr/testify/assert"
)

var cdmx = time.FixedZone("CST", -6*60*60)

func TestCandidatesCSV(t *testing.T) {
	luis := model.Candidate{
		Name: "Luis Gómez", Phone: "555-2222", Email: "luis@x.com", Position: "General",
		Status: model.StatusContacted, AppliedAt: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
	}
	ana := model.Candidate{
		Name: "Ana Pérez", Phone: "555-1111", Email: "ana@x.com", Position: "Ventas",
		Status: model.StatusNew, AppliedAt: time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC),
	}

	got := CandidatesCSV([]model.Candidate{luis, ana}, cdmx)

	want := strings.Join([]string{
		`"Nombre","Teléfono","Email","Puesto","Estado","Fecha de Postulación"`,
		`"Luis Gómez","555-2222","luis@x.com","General","Contactado","10/3/2024"`,
		`"Ana Pérez","555-1111","ana@x.com","Ventas","Nuevo","5/3/2024"`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCandidatesCSVUsesExportZone(t *testing.T) {
	// 03:00 UTC on the 1st is still the previous day in Mexico City
	c := model.Candidate{Status: model.StatusReviewed, AppliedAt: time.Date(2024, 11, 1, 3, 0, 0, 0, time.UTC)}

	lines := strings.Split(CandidatesCSV([]model.Candidate{c}, cdmx), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"","","","","Revisado","31/10/2024"`, lines[1])
}

func TestCandidatesCSVEscapesQuotes(t *testing.T) {
	c := model.Candidate{Name: `Juan "El Rayo" Díaz`, Status: model.StatusRejected, AppliedAt: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)}

	lines := strings.Split(CandidatesCSV([]model.Candidate{c}, time.UTC), "\n")
	assert.Equal(t, `"Juan ""El Rayo"" Díaz","","","","Rechazado","2/1/2024"`, lines[1])
}

func TestCandidatesCSVHeaderOnly(t *testing.T) {
	got := CandidatesCSV(nil, nil)
	assert.Equal(t, `"Nombre","Teléfono","Email","Puesto","Estado","Fecha de Postulación"`, got)
}

func TestWithBOMAndFileName(t *testing.T) {
	body := WithBOM("x")
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'x'}, body)
	assert.Equal(t, "candidatos-panaderia-la-espiga.csv", FileName("Panadería La Espiga"))
}
