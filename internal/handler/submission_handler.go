package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
)

const maxMessageLength = 5000

// SubmissionHandler handles the public contact form and the admin
// moderation endpoints.
type SubmissionHandler struct {
	submissions service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler with the given service.
func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// requireAdmin writes 401/403 and returns false unless the request carries
// an authenticated administrator.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return false
	}
	if !auth.IsAdminFromContext(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return false
	}
	return true
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// All four fields are required; message max 5000 chars. The visitor's
// User-Agent header is kept as a diagnostic.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	required := []struct{ field, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.field + "_required"})
			return
		}
	}

	if len([]rune(req.Message)) > maxMessageLength {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
		return
	}

	sub := &model.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		UserAgent: r.UserAgent(),
	}

	if err := h.submissions.Submit(r.Context(), sub); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sub)
}

// AdminList handles GET /api/admin/submissions.
// Query params: status (all/unread/read/replied), q (search), limit, offset.
func (h *SubmissionHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	opts := model.SubmissionListOptions{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
		Limit:  20,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	subs, err := h.submissions.List(r.Context(), opts)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"submissions": subs})
}

// AdminGet handles GET /api/admin/submissions/{id}. Opening an unread
// submission marks it read as a side effect.
func (h *SubmissionHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	actorID, _ := auth.UserIDFromContext(r.Context())
	sub, err := h.submissions.Open(r.Context(), r.PathValue("id"), actorID)
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

	_ = json.NewEncoder(w).Encode(sub)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/submissions/{id}/status.
// Any of unread/read/replied may be assigned.
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	actorID, _ := auth.UserIDFromContext(r.Context())
	err := h.submissions.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, actorID)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}
}

// replyResponse pairs the replied submission with the mail-client handoff URL.
type replyResponse struct {
	Submission *model.ContactSubmission `json:"submission"`
	Mailto     string                   `json:"mailto"`
}

// Reply handles POST /api/admin/submissions/{id}/reply. It marks the
// submission replied and returns a mailto URL; sending the actual email is
// the admin's mail client's job.
func (h *SubmissionHandler) Reply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	actorID, _ := auth.UserIDFromContext(r.Context())
	sub, err := h.submissions.Reply(r.Context(), r.PathValue("id"), actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reply_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(replyResponse{Submission: sub, Mailto: mailtoURL(sub)})
}

// mailtoURL builds the pre-filled reply link for a submission.
func mailtoURL(sub *model.ContactSubmission) string {
	// QueryEscape encodes spaces as '+', which mail clients read literally.
	subject := strings.ReplaceAll(url.QueryEscape("Re: "+sub.Subject), "+", "%20")
	return "mailto:" + sub.Email + "?subject=" + subject
}

// Delete handles DELETE /api/admin/submissions/{id}. Irreversible.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	err := h.submissions.Delete(r.Context(), r.PathValue("id"))
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

// Stats handles GET /api/admin/submissions/stats.
func (h *SubmissionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	stats, err := h.submissions.Stats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "stats_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(stats)
}

// Events handles GET /api/admin/submissions/{id}/events (audit trail).
func (h *SubmissionHandler) Events(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	events, err := h.submissions.Events(r.Context(), r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "events_failed"})
		return
	}
	if events == nil {
		events = []*model.SubmissionEvent{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"events": events})
}
