package model

import (
	"strings"
	"time"
)

type CandidateStatus string

const (
	StatusNew       CandidateStatus = "nuevo"
	StatusReviewed  CandidateStatus = "revisado"
	StatusContacted CandidateStatus = "contactado"
	StatusRejected  CandidateStatus = "rechazado"
)

// Statuses lists every status in display order.
var Statuses = []CandidateStatus{StatusNew, StatusReviewed, StatusContacted, StatusRejected}

// StatusLabels is the label table used by the admin panel.
var StatusLabels = map[CandidateStatus]string{
	StatusNew:       "Nuevo",
	StatusReviewed:  "Revisado",
	StatusContacted: "Contactado",
	StatusRejected:  "Rechazado",
}

func (s CandidateStatus) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (s CandidateStatus) Label() string {
	return StatusLabels[s]
}

type Candidate struct {
	CandidateID string          `json:"candidate_id" db:"id"`
	CompanyID   string          `json:"company_id" db:"company_id"`
	Name        string          `json:"name" db:"name"`
	Phone       string          `json:"phone" db:"phone"`
	Email       string          `json:"email" db:"email"`
	Position    string          `json:"position" db:"position"`
	CVFileName  string          `json:"cv_file_name" db:"cv_file_name"`
	CVData      string          `json:"-" db:"cv_data"`
	Status      CandidateStatus `json:"status" db:"status"`
	Notes       string          `json:"notes" db:"notes"`
	AppliedAt   time.Time       `json:"applied_at" db:"applied_at"`
}

// HasDocument reports whether a document was attached on submission.
func (c Candidate) HasDocument() bool {
	return c.CVData != ""
}

// NewCandidate is the intake form payload handed to the store.
type NewCandidate struct {
	CompanyID  string
	Name       string
	Phone      string
	Email      string
	Position   string
	CVFileName string
	CVData     string
}

type ApplyReq struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,max=50"`
	Position   string `json:"position" validate:"max=100"`
	CVFileName string `json:"cv_file_name" validate:"max=255"`
	CVData     string `json:"cv_data"`
}

type UpdateStatusReq struct {
	Status CandidateStatus `json:"status" validate:"required,candidate_status"`
}

type UpdateNotesReq struct {
	Notes string `json:"notes" validate:"max=10000"`
}

// CandidateRes is the admin view of a candidate.
type CandidateRes struct {
	Candidate
	StatusLabel string `json:"status_label"`
	HasDocument bool   `json:"has_document"`
}

func (c Candidate) Response() CandidateRes {
	return CandidateRes{
		Candidate:   c,
		StatusLabel: c.Status.Label(),
		HasDocument: c.HasDocument(),
	}
}

// CandidateFilter narrows the admin candidate list.
type CandidateFilter struct {
	Status string `form:"status,default=all"`
	Search string `form:"q"`
}

// Match reports whether c passes the filter. Search is a case-insensitive
// substring match over name and email.
func (f CandidateFilter) Match(c Candidate) bool {
	if f.Status != "" && f.Status != "all" && string(c.Status) != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}

type CandidateStats struct {
	Total    int                     `json:"total"`
	ByStatus map[CandidateStatus]int `json:"by_status"`
}
