package handler

import (
	"encoding/json"
	"net/http"
)

// UnreadCounter exposes the latest polled unread-submission count.
type UnreadCounter interface {
	Unread() int
}

// NotificationHandler serves the dashboard notification badge.
type NotificationHandler struct {
	counter UnreadCounter
}

// NewNotificationHandler creates a NotificationHandler over the poller.
func NewNotificationHandler(counter UnreadCounter) *NotificationHandler {
	return &NotificationHandler{counter: counter}
}

// Get handles GET /api/admin/notifications. The count comes from the
// background poller, not a live query, so it may be up to one poll
// interval stale.
func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !requireAdmin(w, r) {
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]int{"unread": h.counter.Unread()})
}
