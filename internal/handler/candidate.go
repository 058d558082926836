package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/carnicero52/CONTRATA2/internal/export"
	"github.com/carnicero52/CONTRATA2/internal/service"
	"github.com/carnicero52/CONTRATA2/internal/validator"
	"github.com/carnicero52/CONTRATA2/pkg"
	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/carnicero52/CONTRATA2/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields = "Por favor completa todos los campos requeridos"
	msgFileTooLarge  = "El archivo no puede ser mayor a %dMB"
)

// Apply stores a submission from the public form of the company behind :slug.
func (h *Handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	company, err := h.Service.GetCompanyBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "company not found")
			return
		}
		h.Logger.Sugar().Errorw("apply company lookup failed", "slug", c.Param("slug"), "err", err)
		response.InternalError(c, "")
		return
	}

	// base64 inflates the document by 4/3, leave room for the other fields
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.MaxDocumentBytes)*4/3+64<<10)

	var req model.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ValidationError(c, h.fileTooLargeMessage())
			return
		}
		h.Logger.Sugar().Warnw("apply bad request", "slug", company.Slug, "err", err)
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.Validator.Validate(&req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) && verr.MissingRequired() {
			response.ValidationErrorWithFields(c, msgMissingFields, verr.Errors)
			return
		}
		if errors.As(err, &verr) {
			response.ValidationErrorWithFields(c, verr.Error(), verr.Errors)
			return
		}
		response.InternalError(c, "")
		return
	}

	if req.CVData != "" {
		doc, err := pkg.DecodeDocument(req.CVData)
		if err != nil {
			response.ValidationError(c, "cv_data must be a data URI")
			return
		}
		if len(doc.Data) > h.MaxDocumentBytes {
			response.ValidationError(c, h.fileTooLargeMessage())
			return
		}
	}

	position := req.Position
	if position == "" {
		position = model.DefaultPosition
	}

	candidate, err := h.Service.AddCandidate(ctx, model.NewCandidate{
		CompanyID:  company.CompanyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Position:   position,
		CVFileName: req.CVFileName,
		CVData:     req.CVData,
	})
	if err != nil {
		h.Logger.Sugar().Errorw("add candidate failed", "company_id", company.CompanyID, "err", err)
		response.InternalError(c, "could not submit application")
		return
	}

	response.Created(c, gin.H{
		"candidate_id": candidate.CandidateID,
		"company":      company.Name,
	})
}

// fileTooLargeMessage reports the document limit rounded up to whole megabytes.
func (h *Handler) fileTooLargeMessage() string {
	return fmt.Sprintf(msgFileTooLarge, (h.MaxDocumentBytes+1<<20-1)>>20)
}

// ListCandidates returns the current company's candidates, newest first,
// optionally narrowed by status and a name/email search.
func (h *Handler) ListCandidates(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return
	}

	var f model.CandidateFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if f.Status != "" && f.Status != "all" && !model.CandidateStatus(f.Status).Valid() {
		response.BadRequest(c, "invalid status filter")
		return
	}

	candidates, err := h.Service.GetCandidatesByCompany(c.Request.Context(), company.CompanyID)
	if err != nil {
		h.Logger.Sugar().Errorw("list candidates failed", "company_id", company.CompanyID, "err", err)
		response.InternalError(c, "")
		return
	}
	candidates = service.FilterCandidates(candidates, f)

	out := make([]model.CandidateRes, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, cand.Response())
	}
	response.OKWithMeta(c, out, &response.Meta{Total: len(out)})
}

// CandidateStats returns per-status totals for the current company.
func (h *Handler) CandidateStats(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return
	}

	stats, err := h.Service.CandidateStats(c.Request.Context(), company.CompanyID)
	if err != nil {
		h.Logger.Sugar().Errorw("candidate stats failed", "company_id", company.CompanyID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"stats": stats, "labels": model.StatusLabels})
}

// ownedCandidate loads :id and makes sure it belongs to the current company.
// Candidates of other companies are reported as not found.
func (h *Handler) ownedCandidate(c *gin.Context) (*model.Candidate, bool) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return nil, false
	}

	cand, err := h.Service.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "candidate not found")
			return nil, false
		}
		h.Logger.Sugar().Errorw("get candidate failed", "candidate_id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return nil, false
	}
	if cand.CompanyID != company.CompanyID {
		response.NotFound(c, "candidate not found")
		return nil, false
	}
	return cand, true
}

func (h *Handler) GetCandidate(c *gin.Context) {
	cand, ok := h.ownedCandidate(c)
	if !ok {
		return
	}
	response.OK(c, cand.Response())
}

// DownloadDocument streams the résumé attached to a candidate.
func (h *Handler) DownloadDocument(c *gin.Context) {
	cand, ok := h.ownedCandidate(c)
	if !ok {
		return
	}
	if !cand.HasDocument() {
		response.NotFound(c, "no document attached")
		return
	}

	doc, err := pkg.DecodeDocument(cand.CVData)
	if err != nil {
		h.Logger.Sugar().Errorw("stored document unreadable", "candidate_id", cand.CandidateID, "err", err)
		response.InternalError(c, "document unreadable")
		return
	}

	name := cand.CVFileName
	if name == "" {
		name = "cv"
	}
	response.Attachment(c, name, doc.ContentType, doc.Data)
}

func (h *Handler) UpdateCandidateStatus(c *gin.Context) {
	cand, ok := h.ownedCandidate(c)
	if !ok {
		return
	}

	var req model.UpdateStatusReq
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.UpdateCandidateStatus(ctx, cand.CandidateID, req.Status); err != nil {
		h.candidateWriteError(c, cand.CandidateID, err)
		return
	}
	cand.Status = req.Status
	response.OK(c, cand.Response())
}

func (h *Handler) UpdateCandidateNotes(c *gin.Context) {
	cand, ok := h.ownedCandidate(c)
	if !ok {
		return
	}

	var req model.UpdateNotesReq
	if !h.bind(c, &req) {
		return
	}

	if err := h.Service.UpdateCandidateNotes(c.Request.Context(), cand.CandidateID, req.Notes); err != nil {
		h.candidateWriteError(c, cand.CandidateID, err)
		return
	}
	cand.Notes = req.Notes
	response.OK(c, cand.Response())
}

func (h *Handler) DeleteCandidate(c *gin.Context) {
	cand, ok := h.ownedCandidate(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteCandidate(c.Request.Context(), cand.CandidateID); err != nil {
		h.candidateWriteError(c, cand.CandidateID, err)
		return
	}
	response.Message(c, "candidate deleted")
}

func (h *Handler) candidateWriteError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		// removed by another admin between the lookup and the write
		response.NotFound(c, "candidate not found")
	case errors.Is(err, service.ErrInvalidStatus):
		response.ValidationError(c, err.Error())
	default:
		h.Logger.Sugar().Errorw("candidate write failed", "candidate_id", id, "err", err)
		response.InternalError(c, "")
	}
}

// ExportCandidates downloads the current company's candidates as CSV.
func (h *Handler) ExportCandidates(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		response.Unauthorized(c, "")
		return
	}

	csv, err := h.Service.ExportCandidatesCSV(c.Request.Context(), company.CompanyID)
	if err != nil {
		h.Logger.Sugar().Errorw("export failed", "company_id", company.CompanyID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.Attachment(c, export.FileName(company.Name), export.ContentType, export.WithBOM(csv))
}
