package service

import (
	"context"
	"fmt"

	"github.com/carnicero52/CONTRATA2/internal/export"
)

// ExportCandidatesCSV renders the company's candidates in list order.
func (s *Service) ExportCandidatesCSV(ctx context.Context, companyID string) (string, error) {
	candidates, err := s.store.ListCandidatesByCompany(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("export candidates: %w", err)
	}
	return export.CandidatesCSV(candidates, s.exportLoc), nil
}
