package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bodaayj/service/internal/response"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type tokenRequest struct {
	Password string `json:"password" example:"s3cret"`
}

type tokenData struct {
	Token     string    `json:"token"     example:"eyJhbGci..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-06-16T18:00:00Z"`
}

// IssueToken godoc
//
//	@Summary		Issue admin token
//	@Description	Exchanges the admin password for a bearer token valid for 24 hours.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tokenRequest	true	"Admin password"
//	@Success		200		{object}	response.Envelope{data=tokenData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		501		{object}	response.Envelope
//	@Router			/auth/token [post]
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Password == "" {
		response.BadRequest(w, "password is required")
		return
	}

	token, expires, err := h.svc.IssueToken(req.Password)
	switch {
	case errors.Is(err, ErrLoginDisabled):
		response.NotImplemented(w, err.Error())
		return
	case errors.Is(err, ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
		return
	case err != nil:
		response.InternalError(w)
		return
	}

	response.OK(w, tokenData{Token: token, ExpiresAt: expires})
}
