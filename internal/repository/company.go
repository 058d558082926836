package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, slug, name, email, password_hash, phone, address, social_media, logo, created_at, positions`

func scanCompany(row pgx.Row) (*model.Company, error) {
	var c model.Company
	err := row.Scan(&c.CompanyID, &c.Slug, &c.Name, &c.Email, &c.PasswordHash,
		&c.Phone, &c.Address, &c.SocialMedia, &c.Logo, &c.CreatedAt, &c.Positions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCompany(ctx context.Context, company *model.Company) error {
	const q = `
INSERT INTO companies (id, slug, name, email, password_hash, phone, address, social_media, logo, created_at, positions)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := r.db.Exec(ctx, q,
		company.CompanyID, company.Slug, company.Name, company.Email, company.PasswordHash,
		company.Phone, company.Address, company.SocialMedia, company.Logo, company.CreatedAt, company.Positions,
	)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *Repository) GetCompanyByID(ctx context.Context, id string) (*model.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, q, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("query company by id: %w", err)
	}
	return c, err
}

func (r *Repository) GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE slug = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, q, slug))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("query company by slug: %w", err)
	}
	return c, err
}

func (r *Repository) GetCompanyByEmail(ctx context.Context, email string) (*model.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE lower(email) = lower($1)`
	c, err := scanCompany(r.db.QueryRow(ctx, q, email))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("query company by email: %w", err)
	}
	return c, err
}

func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM companies WHERE slug = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// UpdateCompany merges patch into the stored row inside a single transaction.
func (r *Repository) UpdateCompany(ctx context.Context, id string, patch model.CompanyPatch) (*model.Company, error) {
	var out *model.Company
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		q := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 FOR UPDATE`
		c, err := scanCompany(tx.QueryRow(ctx, q, id))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return err
			}
			return fmt.Errorf("lock company: %w", err)
		}

		patch.Apply(c)

		const upd = `
UPDATE companies
SET name = $1, phone = $2, address = $3, social_media = $4, logo = $5, positions = $6
WHERE id = $7
`
		if _, err := tx.Exec(ctx, upd, c.Name, c.Phone, c.Address, c.SocialMedia, c.Logo, c.Positions, id); err != nil {
			return fmt.Errorf("update company: %w", err)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
