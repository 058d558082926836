package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carnicero52/CONTRATA2/internal/auth"
	"github.com/carnicero52/CONTRATA2/internal/handler"
	"github.com/carnicero52/CONTRATA2/internal/service"
	"github.com/carnicero52/CONTRATA2/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer token only while the session pointer still
// names the token's company. A newer login by any company ends older tokens.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Handler.TokenMaker)
		if err != nil {
			response.Unauthorized(c, err.Error())
			return
		}

		company, err := app.Service.GetCurrentCompany(c.Request.Context())
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				app.Logger.Sugar().Errorw("session lookup failed", "err", err)
			}
			response.Unauthorized(c, "session ended")
			return
		}
		if company.CompanyID != claims.CompanyID {
			response.Unauthorized(c, "session ended")
			return
		}

		c.Set(handler.ClaimsKey, claims)
		c.Set(handler.CompanyKey, company)
		c.Next()
	}
}

// RateLimitMiddleware throttles public submissions per client address.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !app.Limiter.Allow(c.Request.Context(), c.ClientIP()) {
			response.TooManyRequests(c, "")
			return
		}
		c.Next()
	}
}

// RequestLogger logs every request through zap.
func (app *application) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.CompanyClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}
