package handler

import (
	"context"
	"io"
	"net/http"
)

// Captured photos are small JPEGs; 10 MiB is generous headroom.
const maxImageBytes = 10 << 20

type faceService interface {
	Register(ctx context.Context, name string, image []byte) error
	Verify(ctx context.Context, image []byte) (bool, error)
}

type FaceHandler struct {
	faces faceService
}

func NewFaceHandler(faces faceService) *FaceHandler {
	return &FaceHandler{faces: faces}
}

// POST /api/v1/face/register
func (h *FaceHandler) Register(w http.ResponseWriter, r *http.Request) {
	name, image, ok := h.parseForm(w, r, true)
	if !ok {
		return
	}

	if err := h.faces.Register(r.Context(), name, image); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"status": "registered", "name": name})
}

// POST /api/v1/face/verify
func (h *FaceHandler) Verify(w http.ResponseWriter, r *http.Request) {
	_, image, ok := h.parseForm(w, r, false)
	if !ok {
		return
	}

	match, err := h.faces.Verify(r.Context(), image)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]bool{"match": match})
}

func (h *FaceHandler) parseForm(w http.ResponseWriter, r *http.Request, wantName bool) (string, []byte, bool) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return "", nil, false
	}

	var name string
	if wantName {
		name = r.FormValue("name")
		if name == "" {
			RespondValidationError(w, []FieldError{{Field: "name", Message: "required"}})
			return "", nil, false
		}
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		RespondValidationError(w, []FieldError{{Field: "image", Message: "required"}})
		return "", nil, false
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return "", nil, false
	}
	return name, image, true
}
