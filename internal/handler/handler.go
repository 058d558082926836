package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/carnicero52/CONTRATA2/internal/auth"
	"github.com/carnicero52/CONTRATA2/internal/service"
	"github.com/carnicero52/CONTRATA2/internal/validator"
	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/carnicero52/CONTRATA2/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// context keys set by the auth middleware
const (
	ClaimsKey  = "claims"
	CompanyKey = "company"
)

type Handler struct {
	Logger           *zap.Logger
	Service          *service.Service
	TokenMaker       *auth.JWTMaker
	TokenTTL         time.Duration
	Validator        *validator.Validator
	PublicBaseURL    string
	MaxDocumentBytes int
}

// GetCompanyFromContext returns the company resolved by the auth middleware.
func (h *Handler) GetCompanyFromContext(c *gin.Context) *model.Company {
	v, exists := c.Get(CompanyKey)
	if !exists {
		return nil
	}
	company, ok := v.(*model.Company)
	if !ok {
		return nil
	}
	return company
}

// GetClaimsFromContext returns the verified token claims.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.CompanyClaims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.CompanyClaims)
	if !ok {
		return nil
	}
	return claims
}

// PublicURL is the intake form address for a company slug.
func (h *Handler) PublicURL(slug string) string {
	return strings.TrimRight(h.PublicBaseURL, "/") + "/aplicar/" + slug
}

// bind decodes the JSON body into req and runs the struct validation rules.
// It writes the error response itself and reports whether the handler may go on.
func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.Logger.Sugar().Warnw("bad request body", "path", c.FullPath(), "err", err)
		response.BadRequest(c, "invalid request body")
		return false
	}
	if err := h.Validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			response.ValidationErrorWithFields(c, verr.Error(), verr.Errors)
			return false
		}
		h.Logger.Sugar().Errorw("validation failed", "err", err)
		response.InternalError(c, "")
		return false
	}
	return true
}
