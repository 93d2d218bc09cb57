// Package rsvp records guests' attendance answers. Responses are appended
// either to Postgres or, without a database, to the wedding spreadsheet
// through the Apps Script web app.
package rsvp

import (
	"context"
	"errors"
	"time"
)

// Submission is one RSVP form answer. All fields travel as strings, as the
// spreadsheet columns do.
type Submission struct {
	Fecha      string `json:"fecha"      example:"15/6/2024, 18:30:00"`
	Nombre     string `json:"nombre"     example:"Ana López"`
	Asistencia string `json:"asistencia" example:"si"`
	Invitados  string `json:"invitados"  example:"2"`
	Mensaje    string `json:"mensaje"    example:"¡Felicidades!"`
}

// Response is a stored Submission.
type Response struct {
	Row int64 `json:"row"`
	Submission
	CreatedAt time.Time `json:"createdAt"`
}

// Store appends submissions and returns the row they landed in.
type Store interface {
	Append(ctx context.Context, s Submission) (int64, error)
	List(ctx context.Context) ([]Response, error)
}

var (
	// ErrMissingFields is returned when nombre or asistencia is empty.
	ErrMissingFields = errors.New("nombre and asistencia are required")

	// ErrListUnsupported is returned by stores that cannot read back responses.
	ErrListUnsupported = errors.New("listing responses is not supported by this store")
)
