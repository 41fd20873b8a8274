package model

import "time"

// PersonalInfo is the single-row site-owner profile behind the hero and
// about sections. At most one row exists; updates upsert it.
type PersonalInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Github    string    `json:"github,omitempty"`
	Linkedin  string    `json:"linkedin,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	ResumeURL string    `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
