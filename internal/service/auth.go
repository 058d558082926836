package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carnicero52/CONTRATA2/internal/repository"
	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
)

// Login checks the credentials and, on success, points the session at the
// company. A failed attempt leaves the current session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Company, error) {
	company, err := s.store.GetCompanyByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup company: %w", err)
	}
	if err := pkg.ComparePassword(company.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, company.CompanyID); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}
	s.logger.Sugar().Infow("company logged in", "company_id", company.CompanyID)
	return company, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// GetCurrentCompany resolves the session pointer. A pointer to a company that
// no longer exists is treated as no session.
func (s *Service) GetCurrentCompany(ctx context.Context) (*model.Company, error) {
	id, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	company, err := s.store.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("lookup session company: %w", err)
	}
	return company, nil
}
