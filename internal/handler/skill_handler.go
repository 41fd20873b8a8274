package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// SkillHandler handles public skill reads and admin CRUD.
type SkillHandler struct {
	skills service.SkillService
}

// NewSkillHandler creates a SkillHandler with the given service.
func NewSkillHandler(skills service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

type skillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
}

// validate checks the request and, when valid, returns the parsed model.
func (req *skillRequest) validate(w http.ResponseWriter) (*model.Skill, bool) {
	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return nil, false
	}
	if req.Category == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "category_required"})
		return nil, false
	}
	if req.Level < 0 || req.Level > 100 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "level_out_of_range"})
		return nil, false
	}
	sk := &model.Skill{Name: req.Name, Category: req.Category, Level: req.Level}
	if req.Icon != "" {
		icon, err := model.ParseIcon(req.Icon)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown_icon"})
			return nil, false
		}
		sk.Icon = icon
	}
	return sk, true
}

// List handles GET /api/skills (public, ordered by category).
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	skills, err := h.skills.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"skills": skills})
}

// Create handles POST /api/skills (admin).
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	sk, ok := req.validate(w)
	if !ok {
		return
	}

	if err := h.skills.Create(r.Context(), sk); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sk)
}

// Update handles PUT /api/skills/{id} (admin).
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	sk, ok := req.validate(w)
	if !ok {
		return
	}

	sk.ID = r.PathValue("id")
	err := h.skills.Update(r.Context(), sk)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(sk)
	}
}

// Delete handles DELETE /api/skills/{id} (admin).
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.skills.Delete(r.Context(), r.PathValue("id"))
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
