package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubUnreadCounter int

func (s stubUnreadCounter) Unread() int { return int(s) }

func TestNotificationHandler_Get(t *testing.T) {
	h := NewNotificationHandler(stubUnreadCounter(5))

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/notifications", nil))
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"unread":5`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestNotificationHandler_Get_RequiresAdmin(t *testing.T) {
	h := NewNotificationHandler(stubUnreadCounter(0))

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/notifications", nil))
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}
