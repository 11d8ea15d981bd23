package photo

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/snapshelf/service/internal/response"
	"github.com/snapshelf/service/internal/web"
)

// ReasonTooLarge is shown when the request body exceeds the upload limit.
const ReasonTooLarge = "the file is too large"

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler holds HTTP handlers for the photo pages.
type Handler struct {
	svc            *Service
	pages          Renderer
	maxUploadBytes int64
}

// NewHandler creates a new photo Handler. Uploads larger than maxUploadBytes
// are rejected.
func NewHandler(svc *Service, pages Renderer, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, pages: pages, maxUploadBytes: maxUploadBytes}
}

type homePage struct {
	Message string
	Success string
}

type galleryItem struct {
	FileName   string
	ServingURL string
	UploadDate time.Time
	Key        string
}

type galleryPage struct {
	Photos []galleryItem
}

// Home godoc
//
//	@Summary		Upload form
//	@Description	Renders the landing page with the upload form and an optional status message.
//	@Tags			photos
//	@Produce		html
//	@Param			message	query		string	false	"Message shown above the form"
//	@Param			success	query		string	false	"Marks the message as a success"
//	@Success		200		{string}	string	"HTML page"
//	@Router			/ [get]
//	@Router			/home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, http.StatusOK, web.PageHome, homePage{
		Message: q.Get("message"),
		Success: q.Get("success"),
	})
}

// Upload godoc
//
//	@Summary		Upload a photo
//	@Description	Stores an image in the object store and records it. Rejected uploads answer 400 with a Location back to /home carrying the reason.
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		html
//	@Param			file	formData	file	true	"Image file"
//	@Success		302		{string}	string	"Redirect to /?message=success"
//	@Failure		400		{string}	string	"HTML page with the rejection reason"
//	@Failure		500		{string}	string	"internal server error"
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Printf("photo: upload rejected: %v", err)
			h.rejectUpload(w, ReasonTooLarge)
			return
		}
		log.Printf("photo: upload rejected: no file: %v", err)
		h.rejectUpload(w, ReasonNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("photo: read upload: %v", err)
		h.rejectUpload(w, ReasonNoFile)
		return
	}

	if ve := ValidateUpload(data, header.Filename); ve != nil {
		log.Printf("photo: upload rejected: %q: %s", header.Filename, ve.Reason)
		h.rejectUpload(w, ve.Reason)
		return
	}

	if _, err := h.svc.StoreNewPhoto(r.Context(), data, header.Filename); err != nil {
		log.Printf("photo: store %q: %v", header.Filename, err)
		response.InternalError(w)
		return
	}

	http.Redirect(w, r, "/?message=success", http.StatusFound)
}

// Show godoc
//
//	@Summary		Gallery
//	@Description	Lists every stored photo.
//	@Tags			photos
//	@Produce		html
//	@Success		200	{string}	string	"HTML gallery"
//	@Failure		500	{string}	string	"internal server error"
//	@Router			/show [get]
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.ListPhotos(r.Context())
	if err != nil {
		log.Printf("photo: list: %v", err)
		response.InternalError(w)
		return
	}

	items := make([]galleryItem, 0, len(photos))
	for _, p := range photos {
		items = append(items, galleryItem{
			FileName:   p.FileName,
			ServingURL: p.ServingURL,
			UploadDate: p.UploadDate,
			Key:        p.ID,
		})
	}
	h.render(w, http.StatusOK, web.PageShow, galleryPage{Photos: items})
}

// Delete godoc
//
//	@Summary		Delete a photo
//	@Description	Deletes the blob and then the record addressed by photo_key.
//	@Tags			photos
//	@Accept			x-www-form-urlencoded
//	@Produce		plain
//	@Param			photo_key	query		string	true	"Opaque photo key"
//	@Success		200			{string}	string	"Empty body"
//	@Failure		404			{string}	string	"Malformed or unknown key"
//	@Failure		500			{string}	string	"Storage error"
//	@Router			/delete [get]
//	@Router			/delete [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.FormValue("photo_key")

	err := h.svc.DeletePhoto(r.Context(), key)
	switch {
	case err == nil:
		response.Empty(w, http.StatusOK)
	case IsNotFound(err):
		log.Printf("photo: delete %q: %v", key, err)
		response.NotFound(w, err.Error())
	default:
		log.Printf("photo: delete %q: %v", key, err)
		response.Text(w, http.StatusInternalServerError, err.Error())
	}
}

// rejectUpload answers 400, points the client back at the home page with the
// reason, and renders that page so the reason is visible either way.
func (h *Handler) rejectUpload(w http.ResponseWriter, reason string) {
	w.Header().Set("Location", "/home?message="+url.QueryEscape(reason))
	h.render(w, http.StatusBadRequest, web.PageHome, homePage{Message: reason})
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages.Render(&buf, page, data); err != nil {
		log.Printf("photo: render %s: %v", page, err)
		response.InternalError(w)
		return
	}
	response.HTML(w, status, buf.Bytes())
}
