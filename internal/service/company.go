package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carnicero52/CONTRATA2/internal/repository"
	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
)

// RegisterCompany creates a company account. A duplicate email is reported
// through the result, not the error; the error is reserved for storage failures.
func (s *Service) RegisterCompany(ctx context.Context, req model.RegisterCompanyReq) (model.RegisterResult, error) {
	fail := model.RegisterResult{Success: false, Message: MsgEmailTaken}

	_, err := s.store.GetCompanyByEmail(ctx, req.Email)
	if err == nil {
		return fail, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.RegisterResult{}, fmt.Errorf("lookup email: %w", err)
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	company := &model.Company{
		CompanyID:    pkg.GenerateID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Phone:        req.Phone,
		Address:      req.Address,
		SocialMedia:  req.SocialMedia,
		Logo:         "",
		CreatedAt:    s.now(),
		Positions:    []string{model.DefaultPosition},
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		company.Slug, err = s.uniqueSlug(ctx, req.Name)
		if err != nil {
			return model.RegisterResult{}, err
		}

		err = s.store.CreateCompany(ctx, company)
		switch {
		case err == nil:
			s.logger.Sugar().Infow("company registered", "company_id", company.CompanyID, "slug", company.Slug)
			return model.RegisterResult{Success: true, Message: MsgRegistered, Company: company}, nil
		case errors.Is(err, repository.ErrDuplicateEmail):
			return fail, nil
		case errors.Is(err, repository.ErrDuplicateSlug):
			// lost a race for the slug, pick again
			continue
		default:
			return model.RegisterResult{}, fmt.Errorf("create company: %w", err)
		}
	}
	return model.RegisterResult{}, fmt.Errorf("create company: %w", repository.ErrDuplicateSlug)
}

// uniqueSlug derives a slug from name and appends a short random suffix
// until it no longer collides with an existing company.
func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := pkg.GenerateSlug(name)
	slug := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		exists, err := s.store.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + pkg.ShortSuffix()
	}
	return "", fmt.Errorf("slug %q: %w", base, repository.ErrDuplicateSlug)
}

func (s *Service) GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error) {
	return s.store.GetCompanyBySlug(ctx, slug)
}

func (s *Service) GetCompanyByID(ctx context.Context, id string) (*model.Company, error) {
	return s.store.GetCompanyByID(ctx, id)
}

// UpdateCompany shallow-merges patch into the stored company.
func (s *Service) UpdateCompany(ctx context.Context, id string, patch model.CompanyPatch) (*model.Company, error) {
	return s.store.UpdateCompany(ctx, id, patch)
}
