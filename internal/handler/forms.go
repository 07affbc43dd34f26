package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
)

// maxUploadBytes caps multipart form memory; larger files spill to disk.
const maxUploadBytes = 10 << 20

// isMultipart reports whether the request carries a multipart form.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/")
}

// formUpload extracts the optional image attachment from an already-parsed
// multipart form. The caller must invoke the returned cleanup.
func formUpload(r *http.Request) (*service.Upload, func(), error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, nil, err
	}
	return &service.Upload{Filename: header.Filename, Data: file}, func() { file.Close() }, nil
}

// CreateSuggestion handles POST /api/suggestions: the public contribution
// form, as JSON or as a multipart form with an optional image.
func (s *Server) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var (
		sug   domain.Suggestion
		image *service.Upload
	)

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed form")
			return
		}
		sug = domain.Suggestion{
			Kind:        domain.SuggestionKind(r.FormValue("kind")),
			Name:        r.FormValue("name"),
			Location:    r.FormValue("location"),
			Description: r.FormValue("description"),
			SenderName:  r.FormValue("sender_name"),
		}
		up, cleanup, err := formUpload(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed image upload")
			return
		}
		defer cleanup()
		image = up
	} else {
		if err := decodeJSON(r, &sug); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
			return
		}
	}

	created, err := s.suggestions.Create(r.Context(), sug, image)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// CreateRegistration handles POST /api/registrations: the school sign-up form.
func (s *Server) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var reg domain.SchoolRegistration

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed form")
			return
		}
		count, _ := strconv.Atoi(r.FormValue("student_count"))
		reg = domain.SchoolRegistration{
			SchoolName:   r.FormValue("school_name"),
			City:         r.FormValue("city"),
			District:     r.FormValue("district"),
			TeacherName:  r.FormValue("teacher_name"),
			Email:        openapi_types.Email(r.FormValue("email")),
			Phone:        r.FormValue("phone"),
			StudentCount: count,
			Activities:   r.Form["activities"],
		}
	} else {
		if err := decodeJSON(r, &reg); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
			return
		}
	}

	created, err := s.registrations.Create(r.Context(), reg)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}
