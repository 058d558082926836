package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateSlug  = errors.New("slug already taken")
)

// CompanyStore persists tenant accounts.
type CompanyStore interface {
	CreateCompany(ctx context.Context, company *model.Company) error
	GetCompanyByID(ctx context.Context, id string) (*model.Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error)
	// GetCompanyByEmail matches email case-insensitively.
	GetCompanyByEmail(ctx context.Context, email string) (*model.Company, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateCompany(ctx context.Context, id string, patch model.CompanyPatch) (*model.Company, error)
}

// CandidateStore persists résumé submissions.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, candidate *model.Candidate) error
	GetCandidateByID(ctx context.Context, id string) (*model.Candidate, error)
	// ListCandidatesByCompany returns the company's candidates, newest first.
	ListCandidatesByCompany(ctx context.Context, companyID string) ([]model.Candidate, error)
	CountCandidatesByStatus(ctx context.Context, companyID string) (map[model.CandidateStatus]int, error)
	UpdateCandidateStatus(ctx context.Context, id string, status model.CandidateStatus) error
	UpdateCandidateNotes(ctx context.Context, id string, notes string) error
	DeleteCandidate(ctx context.Context, id string) error
}

type Store interface {
	CompanyStore
	CandidateStore
}

// Repository is the PostgreSQL implementation of Store.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// uniqueViolation maps a PostgreSQL unique_violation to the matching sentinel.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "companies_email_lower_key":
		return ErrDuplicateEmail
	case "companies_slug_key":
		return ErrDuplicateSlug
	}
	return nil
}
