package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock SubmissionService
// ---------------------------------------------------------------------------

type mockSubmissionService struct {
	submitFunc       func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc         func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
	openFunc         func(ctx context.Context, id, actorID string) (*model.ContactSubmission, error)
	updateStatusFunc func(ctx context.Context, id, status, actorID string) error
	replyFunc        func(ctx context.Context, id, actorID string) (*model.ContactSubmission, error)
	deleteFunc       func(ctx context.Context, id string) error
	statsFunc        func(ctx context.Context) (*model.SubmissionStats, error)
	eventsFunc       func(ctx context.Context, id string) ([]*model.SubmissionEvent, error)
}

func (m *mockSubmissionService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubmissionService) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockSubmissionService) Open(ctx context.Context, id, actorID string) (*model.ContactSubmission, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, id, actorID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSubmissionService) UpdateStatus(ctx context.Context, id, status, actorID string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, actorID)
	}
	return nil
}

func (m *mockSubmissionService) Reply(ctx context.Context, id, actorID string) (*model.ContactSubmission, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, id, actorID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSubmissionService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSubmissionService) Stats(ctx context.Context) (*model.SubmissionStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.SubmissionStats{}, nil
}

func (m *mockSubmissionService) Events(ctx context.Context, id string) ([]*model.SubmissionEvent, error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx, id)
	}
	return nil, nil
}

// asAdmin attaches an authenticated admin identity to the request.
func asAdmin(req *http.Request) *http.Request {
	ctx := auth.WithUserID(req.Context(), "admin-1")
	ctx = auth.WithIsAdmin(ctx, true)
	return req.WithContext(ctx)
}

// asUser attaches a non-admin identity to the request.
func asUser(req *http.Request) *http.Request {
	ctx := auth.WithUserID(req.Context(), "user-1")
	ctx = auth.WithIsAdmin(ctx, false)
	return req.WithContext(ctx)
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactSubmission
	mock := &mockSubmissionService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			captured = sub
			return nil
		},
	}
	h := NewSubmissionHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent/1.0")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a ContactSubmission, got nil")
	}
	if captured.Name != "Alice" {
		t.Errorf("expected name=Alice, got %q", captured.Name)
	}
	if captured.Email != "alice@example.com" {
		t.Errorf("expected email=alice@example.com, got %q", captured.Email)
	}
	if captured.UserAgent != "test-agent/1.0" {
		t.Errorf("expected user agent to be captured, got %q", captured.UserAgent)
	}
}

func TestSubmissionHandler_Submit_RequiredFields(t *testing.T) {
	full := map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "Hi",
		"message": "Hello",
	}

	for field := range full {
		t.Run(field, func(t *testing.T) {
			payload := map[string]string{}
			for k, v := range full {
				if k != field {
					payload[k] = v
				}
			}
			body, _ := json.Marshal(payload)

			h := NewSubmissionHandler(&mockSubmissionService{
				submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
					t.Error("expected no Submit call for invalid input")
					return nil
				},
			})
			req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != field+"_required" {
				t.Errorf("expected error=%s_required, got %q", field, resp["error"])
			}
		})
	}
}

func TestSubmissionHandler_Submit_WhitespaceOnlyFieldRejected(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	body := `{"name":"   ","email":"alice@example.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Submit_MessageTooLong(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	long := strings.Repeat("a", maxMessageLength+1)
	body, _ := json.Marshal(map[string]string{
		"name": "Alice", "email": "a@b.c", "subject": "Hi", "message": long,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockSubmissionService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("db down")
		},
	}
	h := NewSubmissionHandler(mock)

	body := `{"name":"Alice","email":"a@b.c","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Admin guard tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_AdminList_Unauthenticated(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSubmissionHandler_AdminList_NonAdminForbidden(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/submissions tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_AdminList_ForwardsQueryParams(t *testing.T) {
	var gotOpts model.SubmissionListOptions
	mock := &mockSubmissionService{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodGet,
		"/api/admin/submissions?status=unread&q=alice&limit=50&offset=10", nil))
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOpts.Status != "unread" {
		t.Errorf("expected status=unread, got %q", gotOpts.Status)
	}
	if gotOpts.Search != "alice" {
		t.Errorf("expected q=alice, got %q", gotOpts.Search)
	}
	if gotOpts.Limit != 50 {
		t.Errorf("expected limit=50, got %d", gotOpts.Limit)
	}
	if gotOpts.Offset != 10 {
		t.Errorf("expected offset=10, got %d", gotOpts.Offset)
	}
}

func TestSubmissionHandler_AdminList_DefaultsAndCaps(t *testing.T) {
	var gotOpts model.SubmissionListOptions
	mock := &mockSubmissionService{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/submissions?limit=9999", nil))
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if gotOpts.Limit != 20 {
		t.Errorf("expected out-of-range limit to fall back to 20, got %d", gotOpts.Limit)
	}
}

func TestSubmissionHandler_AdminList_EmptyResultIsArray(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{})

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if !strings.Contains(rec.Body.String(), `"submissions":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/admin/submissions/{id}/status tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mock := &mockSubmissionService{
		updateStatusFunc: func(ctx context.Context, id, status, actorID string) error {
			return service.ErrInvalidStatus
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/sub-1/status",
		strings.NewReader(`{"status":"archived"}`)))
	req.SetPathValue("id", "sub-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_status") {
		t.Errorf("expected invalid_status error, got %s", rec.Body.String())
	}
}

func TestSubmissionHandler_UpdateStatus_NotFound(t *testing.T) {
	mock := &mockSubmissionService{
		updateStatusFunc: func(ctx context.Context, id, status, actorID string) error {
			return repository.ErrNotFound
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/missing/status",
		strings.NewReader(`{"status":"read"}`)))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSubmissionHandler_UpdateStatus_PassesActor(t *testing.T) {
	var gotActor string
	mock := &mockSubmissionService{
		updateStatusFunc: func(ctx context.Context, id, status, actorID string) error {
			gotActor = actorID
			return nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/sub-1/status",
		strings.NewReader(`{"status":"replied"}`)))
	req.SetPathValue("id", "sub-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotActor != "admin-1" {
		t.Errorf("expected actor=admin-1, got %q", gotActor)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/submissions/{id}/reply tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_Reply_ReturnsMailto(t *testing.T) {
	mock := &mockSubmissionService{
		replyFunc: func(ctx context.Context, id, actorID string) (*model.ContactSubmission, error) {
			return &model.ContactSubmission{
				ID:      id,
				Email:   "alice@example.com",
				Subject: "Job offer",
				Status:  model.StatusReplied,
			}, nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/submissions/sub-1/reply", nil))
	req.SetPathValue("id", "sub-1")
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp replyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := "mailto:alice@example.com?subject=Re%3A%20Job%20offer"
	if resp.Mailto != want {
		t.Errorf("expected mailto %q, got %q", want, resp.Mailto)
	}
	if resp.Submission.Status != model.StatusReplied {
		t.Errorf("expected replied submission, got %q", resp.Submission.Status)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/submissions/stats tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_Stats(t *testing.T) {
	mock := &mockSubmissionService{
		statsFunc: func(ctx context.Context) (*model.SubmissionStats, error) {
			return &model.SubmissionStats{Total: 6, Unread: 1, Read: 2, Replied: 3}, nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/submissions/stats", nil))
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats model.SubmissionStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.Total != stats.Unread+stats.Read+stats.Replied {
		t.Errorf("expected total to equal the sum of the states: %+v", stats)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/admin/submissions/{id} tests
// ---------------------------------------------------------------------------

func TestSubmissionHandler_Delete(t *testing.T) {
	var deleted string
	mock := &mockSubmissionService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/admin/submissions/sub-1", nil))
	req.SetPathValue("id", "sub-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "sub-1" {
		t.Errorf("expected delete of sub-1, got %q", deleted)
	}
}

func TestSubmissionHandler_Delete_NotFound(t *testing.T) {
	mock := &mockSubmissionService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewSubmissionHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/admin/submissions/missing", nil))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
