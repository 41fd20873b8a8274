package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/storage"
)

func multipartUpload(t *testing.T, kind, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("kind", kind); err != nil {
		t.Fatal(err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadHandler_Upload_Success(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(storage.NewLocalStorage(dir, "/uploads"))

	body, contentType := multipartUpload(t, "project", "screenshot.png", "fake png bytes")
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp["url"], "/uploads/projects/") {
		t.Errorf("expected url under /uploads/projects/, got %q", resp["url"])
	}
	if !strings.HasSuffix(resp["key"], ".png") {
		t.Errorf("expected key to keep the extension, got %q", resp["key"])
	}

	data, err := os.ReadFile(filepath.Join(dir, resp["key"]))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestUploadHandler_Upload_RejectsUnknownKind(t *testing.T) {
	h := NewUploadHandler(storage.NewLocalStorage(t.TempDir(), "/uploads"))

	body, contentType := multipartUpload(t, "malware", "x.png", "data")
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandler_Upload_RejectsUnsupportedExtension(t *testing.T) {
	h := NewUploadHandler(storage.NewLocalStorage(t.TempDir(), "/uploads"))

	body, contentType := multipartUpload(t, "project", "script.exe", "data")
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandler_Upload_RequiresAdmin(t *testing.T) {
	h := NewUploadHandler(storage.NewLocalStorage(t.TempDir(), "/uploads"))

	body, contentType := multipartUpload(t, "project", "x.png", "data")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestUploadHandler_Delete_RejectsTraversal(t *testing.T) {
	h := NewUploadHandler(storage.NewLocalStorage(t.TempDir(), "/uploads"))

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/x", nil))
	req.SetPathValue("key", "../../etc/passwd")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
