package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// ProjectHandler handles public project reads and admin project CRUD.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// projectRequest is the JSON body for create/update.
type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"live_url"`
	GithubURL    string   `json:"github_url"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

func (req *projectRequest) validate(w http.ResponseWriter) bool {
	if req.Title == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "title_required"})
		return false
	}
	if req.Description == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "description_required"})
		return false
	}
	if req.Category == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "category_required"})
		return false
	}
	return true
}

func (req *projectRequest) toModel() *model.Project {
	return &model.Project{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Technologies: req.Technologies,
		Category:     req.Category,
		Featured:     req.Featured,
	}
}

// List handles GET /api/projects (public, newest first).
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projects, err := h.projects.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"projects": projects})
}

// Get handles GET /api/projects/{id} (public).
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	project, err := h.projects.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(project)
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !req.validate(w) {
		return
	}

	project := req.toModel()
	if err := h.projects.Create(r.Context(), project); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(project)
}

// Update handles PUT /api/projects/{id} (admin).
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !req.validate(w) {
		return
	}

	project := req.toModel()
	project.ID = r.PathValue("id")
	err := h.projects.Update(r.Context(), project)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(project)
	}
}

// Delete handles DELETE /api/projects/{id} (admin).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.projects.Delete(r.Context(), r.PathValue("id"))
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
