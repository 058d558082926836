package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/carnicero52/CONTRATA2/internal/database"
	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository connects to TEST_DATABASE_URL, or skips.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, dsn, 4, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.Migrate(ctx, pool))

	return NewRepository(pool)
}

func TestRepositoryRoundTrip(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	suffix := pkg.GenerateID()
	company := &model.Company{
		CompanyID:    "co-" + suffix,
		Slug:         "acme-" + suffix,
		Name:         "Acme",
		Email:        "Ops+" + suffix + "@acme.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		Positions:    []string{model.DefaultPosition},
	}
	require.NoError(t, r.CreateCompany(ctx, company))

	dup := *company
	dup.CompanyID = "co2-" + suffix
	dup.Slug = "other-" + suffix
	assert.ErrorIs(t, r.CreateCompany(ctx, &dup), ErrDuplicateEmail)

	dup.Email = "another+" + suffix + "@acme.com"
	dup.Slug = company.Slug
	assert.ErrorIs(t, r.CreateCompany(ctx, &dup), ErrDuplicateSlug)

	got, err := r.GetCompanyByEmail(ctx, "ops+"+suffix+"@ACME.com")
	require.NoError(t, err)
	assert.Equal(t, company.CompanyID, got.CompanyID)
	assert.Equal(t, []string{"General"}, got.Positions)

	positions := []string{"General", "Ventas"}
	updated, err := r.UpdateCompany(ctx, company.CompanyID, model.CompanyPatch{Positions: &positions})
	require.NoError(t, err)
	assert.Equal(t, positions, updated.Positions)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, id := range []string{"old", "new"} {
		require.NoError(t, r.CreateCandidate(ctx, &model.Candidate{
			CandidateID: id + "-" + suffix,
			CompanyID:   company.CompanyID,
			Name:        id,
			Status:      model.StatusNew,
			AppliedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := r.ListCandidatesByCompany(ctx, company.CompanyID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Name)

	require.NoError(t, r.UpdateCandidateStatus(ctx, "old-"+suffix, model.StatusContacted))
	require.NoError(t, r.UpdateCandidateNotes(ctx, "old-"+suffix, "llamar el lunes"))
	old, err := r.GetCandidateByID(ctx, "old-"+suffix)
	require.NoError(t, err)
	assert.Equal(t, model.StatusContacted, old.Status)
	assert.Equal(t, "llamar el lunes", old.Notes)

	require.NoError(t, r.DeleteCandidate(ctx, "old-"+suffix))
	assert.ErrorIs(t, r.DeleteCandidate(ctx, "old-"+suffix), ErrNotFound)
	_, err = r.GetCandidateByID(ctx, "old-"+suffix)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryCandidateForUnknownCompany(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	suffix := pkg.GenerateID()
	require.NoError(t, r.CreateCandidate(ctx, &model.Candidate{
		CandidateID: "orphan-" + suffix,
		CompanyID:   "missing-" + suffix,
		Name:        "Ana",
		Status:      model.StatusNew,
		AppliedAt:   time.Now().UTC(),
	}))

	list, err := r.ListCandidatesByCompany(ctx, "missing-"+suffix)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "orphan-"+suffix, list[0].CandidateID)
}
