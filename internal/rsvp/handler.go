package rsvp

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/bodaayj/service/internal/response"
)

const maxBodyBytes = 64 << 10

// Handler holds HTTP handlers for RSVP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new rsvp Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// result is the reply shape the invitation page already understands.
type result struct {
	Status  string `json:"status"            example:"success"`
	Message string `json:"message"           example:"Respuesta guardada correctamente"`
	Row     int64  `json:"row,omitempty"     example:"12"`
}

// Submit godoc
//
//	@Summary		Submit an RSVP
//	@Description	Accepts JSON, a form body or query parameters. nombre and asistencia are required.
//	@Tags			rsvp
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		Submission	false	"RSVP answer"
//	@Success		200		{object}	result
//	@Failure		400		{object}	result
//	@Failure		502		{object}	result
//	@Router			/rsvp [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(w, r)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, result{Status: "error", Message: "invalid request body"})
		return
	}

	row, err := h.svc.Submit(r.Context(), sub)
	switch {
	case errors.Is(err, ErrMissingFields):
		response.JSON(w, http.StatusBadRequest, result{
			Status:  "error",
			Message: "Faltan datos requeridos: nombre y asistencia son obligatorios",
		})
		return
	case err != nil:
		log.Error().Err(err).Msg("rsvp: submit failed")
		response.JSON(w, http.StatusBadGateway, result{Status: "error", Message: "Error al guardar: " + err.Error()})
		return
	}

	response.JSON(w, http.StatusOK, result{Status: "success", Message: "Respuesta guardada correctamente", Row: row})
}

// List godoc
//
//	@Summary		List RSVP responses
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=[]Response}
//	@Failure		401	{object}	response.Envelope
//	@Failure		501	{object}	response.Envelope
//	@Router			/admin/rsvps [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if errors.Is(err, ErrListUnsupported) {
		response.NotImplemented(w, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("rsvp: list failed")
		response.InternalError(w)
		return
	}
	if out == nil {
		out = []Response{}
	}
	response.OK(w, out)
}

var fields = []string{"fecha", "nombre", "asistencia", "invitados", "mensaje"}

// decodeSubmission reads a JSON or form body; query parameters override
// body values.
func decodeSubmission(w http.ResponseWriter, r *http.Request) (Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	values := map[string]string{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return Submission{}, err
		}
		for k, v := range raw {
			values[k] = stringify(v)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return Submission{}, err
		}
		overlay(values, r.PostForm)
	}

	// r.Form would prefer body values, so the query is applied last.
	overlay(values, r.URL.Query())

	return Submission{
		Fecha:      values["fecha"],
		Nombre:     values["nombre"],
		Asistencia: values["asistencia"],
		Invitados:  values["invitados"],
		Mensaje:    values["mensaje"],
	}, nil
}

func overlay(values map[string]string, params url.Values) {
	for _, f := range fields {
		if v := params.Get(f); v != "" {
			values[f] = v
		}
	}
}

// stringify renders JSON scalars the way they appear in the sheet.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
