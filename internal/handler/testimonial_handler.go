package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// TestimonialHandler handles public testimonial reads and admin CRUD.
type TestimonialHandler struct {
	testimonials service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler with the given service.
func NewTestimonialHandler(testimonials service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

type testimonialRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Project string `json:"project"`
}

func (req *testimonialRequest) validate(w http.ResponseWriter) bool {
	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return false
	}
	if req.Content == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "content_required"})
		return false
	}
	if req.Rating < 1 || req.Rating > 5 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "rating_out_of_range"})
		return false
	}
	return true
}

func (req *testimonialRequest) toModel() *model.Testimonial {
	return &model.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Avatar:  req.Avatar,
		Content: req.Content,
		Rating:  req.Rating,
		Project: req.Project,
	}
}

// List handles GET /api/testimonials (public, newest first).
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	testimonials, err := h.testimonials.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"testimonials": testimonials})
}

// Create handles POST /api/testimonials (admin).
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req testimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !req.validate(w) {
		return
	}

	t := req.toModel()
	if err := h.testimonials.Create(r.Context(), t); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// Update handles PUT /api/testimonials/{id} (admin).
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req testimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !req.validate(w) {
		return
	}

	t := req.toModel()
	t.ID = r.PathValue("id")
	err := h.testimonials.Update(r.Context(), t)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(t)
	}
}

// Delete handles DELETE /api/testimonials/{id} (admin).
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.testimonials.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}
}
