package model

import "time"

// Moderation states for a contact submission. A submission is created as
// "unread", flips to "read" the first time an admin opens it, and becomes
// "replied" when the admin hands off to their mail client. Free reassignment
// between all three states is allowed; transitions are recorded as events.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatus reports whether s is one of the known moderation states.
func ValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead || s == StatusReplied
}

// ContactSubmission is a visitor-authored contact-form record stored for
// admin review. ID and timestamps are assigned by the database.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "unread" | "read" | "replied"
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubmissionListOptions carries filter and pagination parameters for
// listing contact submissions.
type SubmissionListOptions struct {
	// Status filters by moderation state: "", "all", "unread", "read",
	// "replied". Empty string and "all" return all submissions.
	Status string
	// Search is a case-insensitive substring matched against name, email,
	// subject and message; a hit in any field qualifies.
	Search string
	Limit  int
	Offset int
}

// SubmissionStats are per-state submission counts.
// Total is always Unread + Read + Replied.
type SubmissionStats struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}

// SubmissionEvent is one entry of the moderation audit trail: a single
// status transition with the admin who triggered it.
type SubmissionEvent struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	ActorID      string    `json:"actor_id"`
	CreatedAt    time.Time `json:"created_at"`
}
