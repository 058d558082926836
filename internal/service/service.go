// Package service is the data store facade used by the HTTP layer: company
// registration and lookup, the login session, candidate intake and review,
// and the CSV export.
package service

import (
	"errors"
	"time"

	"github.com/carnicero52/CONTRATA2/internal/repository"
	"github.com/carnicero52/CONTRATA2/internal/session"
	"go.uber.org/zap"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrNoSession          = session.ErrNoSession
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid status")
)

// Messages shown to the person registering a company.
const (
	MsgEmailTaken = "Este correo ya está registrado."
	MsgRegistered = "¡Cuenta creada exitosamente! Ahora inicia sesión."
)

// slug disambiguation attempts before giving up
const maxSlugAttempts = 8

type Service struct {
	store     repository.Store
	sessions  session.Store
	logger    *zap.Logger
	now       func() time.Time
	exportLoc *time.Location
}

type Option func(*Service)

// WithClock replaces time.Now for creation and application timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithExportLocation sets the time zone dates are rendered in on export.
func WithExportLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.exportLoc = loc
		}
	}
}

func New(store repository.Store, sessions session.Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:     store,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
		exportLoc: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
