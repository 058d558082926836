package validator

import (
	"errors"
	"testing"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateApplyReq(t *testing.T) {
	v := New()

	err := v.Validate(model.ApplyReq{Name: "Ana", Email: "ana@x.com", Phone: "555"})
	assert.NoError(t, err)

	err = v.Validate(model.ApplyReq{Name: "Ana", Email: "no-es-correo"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Errors, "email")
	assert.Contains(t, ve.Errors, "phone")
	assert.True(t, ve.MissingRequired())
	assert.Equal(t, "validation failed: field 'email': Must be a valid email address; field 'phone': This field is required", ve.Error())
}

func TestValidateMissingRequiredOnlyOnRequired(t *testing.T) {
	err := New().Validate(model.ApplyReq{Name: "Ana", Email: "bad", Phone: "555"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.False(t, ve.MissingRequired())
}

func TestValidateCandidateStatus(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(model.UpdateStatusReq{Status: model.StatusReviewed}))

	err := v.Validate(model.UpdateStatusReq{Status: "archivado"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Must be one of: nuevo, revisado, contactado, rechazado", ve.Errors["status"])
}

func TestValidateCompanyPatch(t *testing.T) {
	v := New()
	blank := []string{"General", ""}
	ok := []string{"General", "Ventas"}

	assert.NoError(t, v.Validate(model.CompanyPatch{}))
	assert.NoError(t, v.Validate(model.CompanyPatch{Positions: &ok}))
	assert.Error(t, v.Validate(model.CompanyPatch{Positions: &blank}))
}
