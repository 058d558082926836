package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, company_id, name, phone, email, position, cv_file_name, cv_data, status, notes, applied_at`

func scanCandidate(row pgx.Row) (*model.Candidate, error) {
	var c model.Candidate
	err := row.Scan(&c.CandidateID, &c.CompanyID, &c.Name, &c.Phone, &c.Email, &c.Position,
		&c.CVFileName, &c.CVData, &c.Status, &c.Notes, &c.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCandidate(ctx context.Context, candidate *model.Candidate) error {
	const q = `
INSERT INTO candidates (id, company_id, name, phone, email, position, cv_file_name, cv_data, status, notes, applied_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := r.db.Exec(ctx, q,
		candidate.CandidateID, candidate.CompanyID, candidate.Name, candidate.Phone, candidate.Email,
		candidate.Position, candidate.CVFileName, candidate.CVData, candidate.Status, candidate.Notes,
		candidate.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *Repository) GetCandidateByID(ctx context.Context, id string) (*model.Candidate, error) {
	q := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query candidate: %w", err)
	}
	return c, nil
}

func (r *Repository) ListCandidatesByCompany(ctx context.Context, companyID string) ([]model.Candidate, error) {
	q := `SELECT ` + candidateColumns + ` FROM candidates WHERE company_id = $1 ORDER BY applied_at DESC, seq ASC`
	rows, err := r.db.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0, 16)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		out = append(out, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) CountCandidatesByStatus(ctx context.Context, companyID string) (map[model.CandidateStatus]int, error) {
	const q = `SELECT status, COUNT(1) FROM candidates WHERE company_id = $1 GROUP BY status`
	rows, err := r.db.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}
	defer rows.Close()

	out := make(map[model.CandidateStatus]int, len(model.Statuses))
	for rows.Next() {
		var status model.CandidateStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) UpdateCandidateStatus(ctx context.Context, id string, status model.CandidateStatus) error {
	const q = `UPDATE candidates SET status = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return fmt.Errorf("update candidate status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateCandidateNotes(ctx context.Context, id string, notes string) error {
	const q = `UPDATE candidates SET notes = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, q, notes, id)
	if err != nil {
		return fmt.Errorf("update candidate notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteCandidate(ctx context.Context, id string) error {
	const q = `DELETE FROM candidates WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
