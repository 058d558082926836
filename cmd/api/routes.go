package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/companies", app.Handler.RegisterCompany)
		v1.POST("/login", app.Handler.Login)
	}

	public := v1.Group("/public/companies/:slug")
	{
		public.GET("", app.Handler.PublicCompany)
		public.POST("/candidates", app.RateLimitMiddleware(), app.Handler.Apply)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)
		protected.POST("/logout", app.Handler.Logout)
		protected.PATCH("/company", app.Handler.UpdateCompany)

		// candidate routes
		protected.GET("/candidates", app.Handler.ListCandidates)
		protected.GET("/candidates/stats", app.Handler.CandidateStats)
		protected.GET("/candidates/export", app.Handler.ExportCandidates)
		protected.GET("/candidates/:id", app.Handler.GetCandidate)
		protected.GET("/candidates/:id/document", app.Handler.DownloadDocument)
		protected.PATCH("/candidates/:id/status", app.Handler.UpdateCandidateStatus)
		protected.PUT("/candidates/:id/notes", app.Handler.UpdateCandidateNotes)
		protected.DELETE("/candidates/:id", app.Handler.DeleteCandidate)
	}

	return r
}
