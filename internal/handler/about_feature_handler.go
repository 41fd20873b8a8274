package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// AboutFeatureHandler handles public about-feature reads and admin CRUD.
type AboutFeatureHandler struct {
	features service.AboutFeatureService
}

// NewAboutFeatureHandler creates an AboutFeatureHandler with the given service.
func NewAboutFeatureHandler(features service.AboutFeatureService) *AboutFeatureHandler {
	return &AboutFeatureHandler{features: features}
}

type aboutFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

func (req *aboutFeatureRequest) validate(w http.ResponseWriter) (*model.AboutFeature, bool) {
	if req.Title == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "title_required"})
		return nil, false
	}
	if req.Description == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "description_required"})
		return nil, false
	}
	icon, err := model.ParseIcon(req.Icon)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown_icon"})
		return nil, false
	}
	return &model.AboutFeature{
		Title:       req.Title,
		Description: req.Description,
		Icon:        icon,
		SortOrder:   req.SortOrder,
	}, true
}

// List handles GET /api/about/features (public, display order).
func (h *AboutFeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	features, err := h.features.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if features == nil {
		features = []*model.AboutFeature{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"features": features})
}

// Create handles POST /api/about/features (admin).
func (h *AboutFeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req aboutFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	f, ok := req.validate(w)
	if !ok {
		return
	}

	if err := h.features.Create(r.Context(), f); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(f)
}

// Update handles PUT /api/about/features/{id} (admin).
func (h *AboutFeatureHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req aboutFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	f, ok := req.validate(w)
	if !ok {
		return
	}

	f.ID = r.PathValue("id")
	err := h.features.Update(r.Context(), f)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(f)
	}
}

// Delete handles DELETE /api/about/features/{id} (admin).
func (h *AboutFeatureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.features.Delete(r.Context(), r.PathValue("id"))
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
