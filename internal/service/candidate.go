package service

import (
	"context"
	"fmt"

	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
)

// AddCandidate stores a submission as-is. The company id is not checked and
// repeated submissions are accepted.
func (s *Service) AddCandidate(ctx context.Context, in model.NewCandidate) (*model.Candidate, error) {
	candidate := &model.Candidate{
		CandidateID: pkg.GenerateID(),
		CompanyID:   in.CompanyID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Position:    in.Position,
		CVFileName:  in.CVFileName,
		CVData:      in.CVData,
		Status:      model.StatusNew,
		Notes:       "",
		AppliedAt:   s.now(),
	}
	if err := s.store.CreateCandidate(ctx, candidate); err != nil {
		return nil, fmt.Errorf("add candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidatesByCompany returns the company's candidates, most recent first.
func (s *Service) GetCandidatesByCompany(ctx context.Context, companyID string) ([]model.Candidate, error) {
	return s.store.ListCandidatesByCompany(ctx, companyID)
}

// FilterCandidates applies the admin list filter to an already sorted list.
func FilterCandidates(candidates []model.Candidate, f model.CandidateFilter) []model.Candidate {
	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	return s.store.GetCandidateByID(ctx, id)
}

// UpdateCandidateStatus sets any status regardless of the current one.
func (s *Service) UpdateCandidateStatus(ctx context.Context, id string, status model.CandidateStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.store.UpdateCandidateStatus(ctx, id, status)
}

func (s *Service) UpdateCandidateNotes(ctx context.Context, id, notes string) error {
	return s.store.UpdateCandidateNotes(ctx, id, notes)
}

func (s *Service) DeleteCandidate(ctx context.Context, id string) error {
	if err := s.store.DeleteCandidate(ctx, id); err != nil {
		return err
	}
	s.logger.Sugar().Infow("candidate deleted", "candidate_id", id)
	return nil
}

// CandidateStats counts a company's candidates per status.
func (s *Service) CandidateStats(ctx context.Context, companyID string) (model.CandidateStats, error) {
	counts, err := s.store.CountCandidatesByStatus(ctx, companyID)
	if err != nil {
		return model.CandidateStats{}, fmt.Errorf("candidate stats: %w", err)
	}
	stats := model.CandidateStats{ByStatus: make(map[model.CandidateStatus]int, len(model.Statuses))}
	for _, st := range model.Statuses {
		stats.ByStatus[st] = counts[st]
		stats.Total += counts[st]
	}
	return stats, nil
}
