// Package media exposes the image endpoints: upload with transcode, listing,
// and deletion of stored objects.
package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/GabrielSB19/menupp-back/internal/response"
	"github.com/GabrielSB19/menupp-back/internal/storage"
	"github.com/GabrielSB19/menupp-back/internal/transcode"
)

// maxUploadMemory caps the in-memory portion of multipart parsing; larger
// parts spill to temporary files.
const maxUploadMemory = 32 << 20

// Handler holds HTTP handlers for the media endpoints.
type Handler struct {
	store storage.Store
}

// NewHandler creates a new media Handler.
func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

type deleteRequest struct {
	FileName string `json:"fileName" example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b.png"`
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Accepts a multipart form with one file field, transcodes the image to a 720px-wide PNG, and stores it under a generated UUID key.
//	@Tags			media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file (png, jpeg, or gif)"
//	@Success		200		{string}	string	"Success"
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/media/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file := firstFile(r.MultipartForm)
	if file == nil {
		response.BadRequest(w, "no file to upload, please choose a file.")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("upload: open multipart file: %v", err)
		response.InternalError(w)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Printf("upload: read multipart file: %v", err)
		response.InternalError(w)
		return
	}

	// The store is written only after a successful transcode, so undecodable
	// input never leaves a partial object behind.
	converted, err := transcode.ToPNG(data)
	if err != nil {
		log.Printf("upload: %v", err)
		response.Error(w, http.StatusInternalServerError, "could not process image")
		return
	}

	key := uuid.NewString() + ".png"
	if err := h.store.Upload(r.Context(), key, bytes.NewReader(converted), int64(len(converted)), "image/png"); err != nil {
		log.Printf("upload: store %q: %v", key, err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, "Success")
}

// List godoc
//
//	@Summary		List stored images
//	@Description	Returns metadata for every object in the bucket.
//	@Tags			media
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		storage.ObjectMetadata
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		403	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/media [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	objects, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("list objects: %v", err)
		response.InternalError(w)
		return
	}
	response.JSON(w, http.StatusOK, objects)
}

// Delete godoc
//
//	@Summary		Delete a stored image
//	@Description	Removes the named object from the bucket.
//	@Tags			media
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		deleteRequest	true	"Object key to delete"
//	@Success		200		{string}	string			"File deleted"
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		403		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/media [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.FileName == "" {
		response.BadRequest(w, "fileName is required")
		return
	}

	err := h.store.Delete(r.Context(), req.FileName)
	if errors.Is(err, storage.ErrObjectNotFound) {
		response.NotFound(w, "File not found")
		return
	}
	if err != nil {
		log.Printf("delete %q: %v", req.FileName, err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, "File deleted")
}

// firstFile returns the first file header in the form, or nil when the form
// carries no file at all. The field name is not significant; clients send
// whatever name their form widget produced.
func firstFile(form *multipart.Form) *multipart.FileHeader {
	for _, headers := range form.File {
		if len(headers) > 0 {
			return headers[0]
		}
	}
	return nil
}
