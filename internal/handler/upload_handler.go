package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/devfolio/backend/internal/storage"
)

// uploads larger than this are rejected outright.
const maxUploadBytes = 10 << 20 // 10 MiB

// uploadKinds maps the client-supplied kind to the storage subdirectory.
var uploadKinds = map[string]string{
	"project":     "projects",
	"avatar":      "avatars",
	"resume":      "resume",
	"testimonial": "testimonials",
}

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// UploadHandler stores admin-uploaded site assets (project screenshots,
// avatars, the resume PDF) and returns their public URL.
type UploadHandler struct {
	store storage.Storage
}

// NewUploadHandler creates an UploadHandler over the given storage backend.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /api/admin/uploads. Expects multipart form data with
// a "file" part and a "kind" value (project, avatar, resume, testimonial).
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_multipart"})
		return
	}

	dir, ok := uploadKinds[r.FormValue("kind")]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_kind"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported_file_type"})
		return
	}

	key := dir + "/" + uuid.NewString() + ext
	url, err := h.store.Save(r.Context(), key, file, mime.TypeByExtension(ext))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// Delete handles DELETE /api/admin/uploads/{key...}.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	key := r.PathValue("key")
	if key == "" || strings.Contains(key, "..") {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_key"})
		return
	}

	if err := h.store.Delete(r.Context(), key); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
