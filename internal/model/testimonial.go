package model

import "time"

// Testimonial is a client quote shown on the public site. Rating is 1..5.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Project   string    `json:"project,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
