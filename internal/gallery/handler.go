package gallery

import (
	"errors"
	"io"
	"net/http"

	"github.com/bodaayj/service/internal/qr"
	"github.com/bodaayj/service/internal/response"
)

// multipartOverhead is headroom for form boundaries and fields around the file.
const multipartOverhead = 1 << 20

// Handler holds HTTP handlers for the guest-facing gallery endpoints.
type Handler struct {
	svc           *Service
	publicBaseURL string
}

// NewHandler creates a new gallery Handler.
func NewHandler(svc *Service, publicBaseURL string) *Handler {
	return &Handler{svc: svc, publicBaseURL: publicBaseURL}
}

type qrData struct {
	GalleryURL string `json:"galleryUrl" example:"https://boda.example/#/post-wedding-gallery?camera=true"`
	QRURL      string `json:"qrUrl"      example:"https://api.qrserver.com/v1/create-qr-code/?size=400x400&data=..."`
}

// ListImages godoc
//
//	@Summary		List gallery images
//	@Description	Returns the gallery newest first. Listing failures are not reported; the gallery then contains only this session's uploads.
//	@Tags			gallery
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]GalleryImage}
//	@Router			/gallery/images [get]
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.GetImages(r.Context()))
}

// Refresh godoc
//
//	@Summary		Reload gallery images
//	@Description	Drops the cached listing and fetches it again.
//	@Tags			gallery
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]GalleryImage}
//	@Router			/gallery/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCache()
	response.OK(w, h.svc.GetImages(r.Context()))
}

// UploadImage godoc
//
//	@Summary		Upload a photo
//	@Description	Accepts a JPG, PNG or GIF of at most 10MB in the multipart field "file".
//	@Tags			gallery
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	response.Envelope{data=GalleryImage}
//	@Failure		400		{object}	response.Envelope
//	@Failure		502		{object}	response.Envelope
//	@Router			/gallery/images [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "file is too large, maximum is 10MB")
			return
		}
		response.BadRequest(w, `expected an image in multipart field "file"`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "could not read uploaded file")
		return
	}

	f := File{Name: header.Filename, ContentType: header.Header.Get("Content-Type"), Data: data}
	if err := ValidateFile(&f); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result := h.svc.UploadImage(r.Context(), f)
	if !result.Success {
		response.BadGateway(w, result.Error)
		return
	}
	response.Created(w, result.Image)
}

// QR godoc
//
//	@Summary		Gallery QR code
//	@Description	Returns the gallery link (camera enabled) and a QR image URL encoding it.
//	@Tags			gallery
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=qrData}
//	@Router			/gallery/qr [get]
func (h *Handler) QR(w http.ResponseWriter, r *http.Request) {
	response.OK(w, qrData{
		GalleryURL: qr.GalleryLink(h.publicBaseURL),
		QRURL:      qr.Gallery(h.publicBaseURL),
	})
}

// Stats godoc
//
//	@Summary		Gallery state
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=Stats}
//	@Failure		401	{object}	response.Envelope
//	@Router			/admin/gallery/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.Stats())
}

// ClearCache godoc
//
//	@Summary		Drop the cached listing
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=Stats}
//	@Failure		401	{object}	response.Envelope
//	@Router			/admin/gallery/cache [delete]
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCache()
	response.OK(w, h.svc.Stats())
}
