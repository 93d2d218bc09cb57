package rsvp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultInvitados = "0"
	defaultMensaje   = "Sin mensaje"

	// fechaLayout mirrors the es-MX locale string the spreadsheet already holds.
	fechaLayout = "2/1/2006, 15:04:05"
)

// Service validates submissions and hands them to a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new RSVP Service.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit normalizes s and appends it. It returns the row number reported by
// the store.
func (s *Service) Submit(ctx context.Context, sub Submission) (int64, error) {
	sub = s.normalize(sub)
	if sub.Nombre == "" || sub.Asistencia == "" {
		return 0, ErrMissingFields
	}

	row, err := s.store.Append(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("append rsvp: %w", err)
	}

	log.Info().
		Str("nombre", sub.Nombre).
		Str("asistencia", sub.Asistencia).
		Str("invitados", sub.Invitados).
		Int64("row", row).
		Msg("rsvp saved")
	return row, nil
}

// List returns every stored response.
func (s *Service) List(ctx context.Context) ([]Response, error) {
	return s.store.List(ctx)
}

func (s *Service) normalize(sub Submission) Submission {
	sub.Nombre = strings.TrimSpace(sub.Nombre)
	sub.Asistencia = strings.TrimSpace(sub.Asistencia)
	sub.Invitados = strings.TrimSpace(sub.Invitados)
	sub.Mensaje = strings.TrimSpace(sub.Mensaje)
	sub.Fecha = strings.TrimSpace(sub.Fecha)

	if sub.Invitados == "" {
		sub.Invitados = defaultInvitados
	}
	if sub.Mensaje == "" {
		sub.Mensaje = defaultMensaje
	}
	if sub.Fecha == "" {
		sub.Fecha = s.now().Format(fechaLayout)
	}
	return sub
}
