package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// ContactInfoHandler handles the public contact/social rows and admin CRUD.
type ContactInfoHandler struct {
	infos service.ContactInfoService
}

// NewContactInfoHandler creates a ContactInfoHandler with the given service.
func NewContactInfoHandler(infos service.ContactInfoService) *ContactInfoHandler {
	return &ContactInfoHandler{infos: infos}
}

type contactInfoRequest struct {
	Label        string `json:"label"`
	Value        string `json:"value"`
	Icon         string `json:"icon"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (req *contactInfoRequest) validate(w http.ResponseWriter) (*model.ContactInfo, bool) {
	if req.Label == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "label_required"})
		return nil, false
	}
	if req.Value == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "value_required"})
		return nil, false
	}
	if !model.ValidContactInfoType(req.Type) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_type"})
		return nil, false
	}
	icon, err := model.ParseIcon(req.Icon)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown_icon"})
		return nil, false
	}
	return &model.ContactInfo{
		Label:        req.Label,
		Value:        req.Value,
		Icon:         icon,
		Type:         req.Type,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}, true
}

// ListPublic handles GET /api/contact-info (public: active rows only).
func (h *ContactInfoHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	infos, err := h.infos.ListPublic(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if infos == nil {
		infos = []*model.ContactInfo{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"contact_info": infos})
}

// AdminList handles GET /api/admin/contact-info (all rows).
func (h *ContactInfoHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	infos, err := h.infos.ListAll(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if infos == nil {
		infos = []*model.ContactInfo{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"contact_info": infos})
}

// Create handles POST /api/admin/contact-info.
func (h *ContactInfoHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req contactInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	ci, ok := req.validate(w)
	if !ok {
		return
	}

	if err := h.infos.Create(r.Context(), ci); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ci)
}

// Update handles PUT /api/admin/contact-info/{id}.
func (h *ContactInfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req contactInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	ci, ok := req.validate(w)
	if !ok {
		return
	}

	ci.ID = r.PathValue("id")
	err := h.infos.Update(r.Context(), ci)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(ci)
	}
}

// Delete handles DELETE /api/admin/contact-info/{id}.
func (h *ContactInfoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.infos.Delete(r.Context(), r.PathValue("id"))
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
