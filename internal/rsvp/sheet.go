package rsvp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SheetStore appends responses to the wedding spreadsheet via the Apps
// Script web app. The script cannot list rows back.
type SheetStore struct {
	client    *http.Client
	scriptURL string
}

var _ Store = (*SheetStore)(nil)

// NewSheetStore creates a SheetStore for the deployed web app URL.
func NewSheetStore(client *http.Client, scriptURL string) *SheetStore {
	return &SheetStore{client: client, scriptURL: scriptURL}
}

type sheetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Row     int64  `json:"row"`
}

// Append sends s as query parameters; the script treats a GET without an
// action as an RSVP.
func (s *SheetStore) Append(ctx context.Context, sub Submission) (int64, error) {
	if s.scriptURL == "" {
		return 0, errors.New("sheet store: APPS_SCRIPT_URL is not configured")
	}
	u, err := url.Parse(s.scriptURL)
	if err != nil {
		return 0, fmt.Errorf("parse script url: %w", err)
	}
	q := u.Query()
	q.Set("fecha", sub.Fecha)
	q.Set("nombre", sub.Nombre)
	q.Set("asistencia", sub.Asistencia)
	q.Set("invitados", sub.Invitados)
	q.Set("mensaje", sub.Mensaje)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sheet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sheet request: %s", resp.Status)
	}

	var out sheetResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode sheet response: %w", err)
	}
	if out.Status != "success" {
		msg := out.Message
		if msg == "" {
			msg = "unexpected status " + out.Status
		}
		return 0, fmt.Errorf("sheet rejected rsvp: %s", msg)
	}
	return out.Row, nil
}

// List is not available for the spreadsheet.
func (s *SheetStore) List(context.Context) ([]Response, error) {
	return nil, ErrListUnsupported
}
