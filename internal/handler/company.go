package handler

import (
	"errors"

	"github.com/carnicero52/CONTRATA2/internal/service"
	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/carnicero52/CONTRATA2/pkg/response"
	"github.com/gin-gonic/gin"
)

// RegisterCompany creates a company account.
func (h *Handler) RegisterCompany(c *gin.Context) {
	var req model.RegisterCompanyReq
	if !h.bind(c, &req) {
		return
	}

	result, err := h.Service.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		h.Logger.Sugar().Errorw("company register failed", "email", req.Email, "err", err)
		response.InternalError(c, "could not create company")
		return
	}
	if !result.Success {
		response.Conflict(c, result.Message)
		return
	}

	response.Created(c, gin.H{
		"message":    result.Message,
		"slug":       result.Company.Slug,
		"public_url": h.PublicURL(result.Company.Slug),
	})
}

// Login verifies credentials, takes over the session and returns a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	company, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Logger.Sugar().Warnw("login rejected", "email", req.Email)
			response.Unauthorized(c, "invalid credentials")
			return
		}
		h.Logger.Sugar().Errorw("login failed", "email", req.Email, "err", err)
		response.InternalError(c, "")
		return
	}

	accessToken, claims, err := h.TokenMaker.GenerateToken(company.CompanyID, company.Email, h.TokenTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginRes{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: claims.ExpiresAt.Time,
		Company:              *company,
		PublicURL:            h.PublicURL(company.Slug),
	})
}

// Logout ends the current session.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context()); err != nil {
		h.Logger.Sugar().Errorw("logout failed", "err", err)
		response.InternalError(c, "could not end session")
		return
	}
	if claims := h.GetClaimsFromContext(c); claims != nil {
		h.Logger.Sugar().Infow("company logged out", "company_id", claims.CompanyID, "token_id", claims.ID)
	}
	response.Message(c, "logged out")
}

// Me returns the logged-in company and its public form address.
func (h *Handler) Me(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, model.MeRes{Company: *company, PublicURL: h.PublicURL(company.Slug)})
}

// UpdateCompany applies a partial update to the logged-in company.
func (h *Handler) UpdateCompany(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return
	}

	var patch model.CompanyPatch
	if !h.bind(c, &patch) {
		return
	}
	if patch.Empty() {
		response.BadRequest(c, "nothing to update")
		return
	}

	updated, err := h.Service.UpdateCompany(c.Request.Context(), company.CompanyID, patch)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "company not found")
			return
		}
		h.Logger.Sugar().Errorw("company update failed", "company_id", company.CompanyID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, updated)
}

// PublicCompany is what the application form loads for a slug.
func (h *Handler) PublicCompany(c *gin.Context) {
	company, err := h.Service.GetCompanyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "company not found")
			return
		}
		h.Logger.Sugar().Errorw("public company lookup failed", "slug", c.Param("slug"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, company.Public())
}
