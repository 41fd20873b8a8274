package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// PersonalInfoHandler handles the public profile read and admin upsert.
type PersonalInfoHandler struct {
	info service.PersonalInfoService
}

// NewPersonalInfoHandler creates a PersonalInfoHandler with the given service.
func NewPersonalInfoHandler(info service.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{info: info}
}

// Get handles GET /api/personal-info (public).
func (h *PersonalInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	info, err := h.info.Get(r.Context())
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

	_ = json.NewEncoder(w).Encode(info)
}

type personalInfoRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	ResumeURL string `json:"resume_url"`
}

// Update handles PUT /api/personal-info (admin). Creates the row when the
// profile has never been written.
func (h *PersonalInfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req personalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.Name == "" || req.Title == "" || req.Email == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_title_and_email_required"})
		return
	}

	info := &model.PersonalInfo{
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
		Twitter:   req.Twitter,
		ResumeURL: req.ResumeURL,
	}
	if err := h.info.Upsert(r.Context(), info); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(info)
}
