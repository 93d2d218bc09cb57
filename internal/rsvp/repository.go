package rsvp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps responses in the rsvp_responses table.
type PostgresStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore with the given connection pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts s and returns its id as the row number.
func (r *PostgresStore) Append(ctx context.Context, s Submission) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO rsvp_responses (fecha, nombre, asistencia, invitados, mensaje)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.Fecha, s.Nombre, s.Asistencia, s.Invitados, s.Mensaje,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert rsvp: %w", err)
	}
	return id, nil
}

// List returns all responses, newest first.
func (r *PostgresStore) List(ctx context.Context) ([]Response, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, fecha, nombre, asistencia, invitados, mensaje, created_at
		 FROM rsvp_responses
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Response, error) {
		var res Response
		err := row.Scan(&res.Row, &res.Fecha, &res.Nombre, &res.Asistencia, &res.Invitados, &res.Mensaje, &res.CreatedAt)
		return res, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan rsvps: %w", err)
	}
	return out, nil
}
