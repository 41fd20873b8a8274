package model

import "time"

// ContactInfo type discriminators: direct contact channels vs. social links.
const (
	ContactInfoTypeContact = "contact"
	ContactInfoTypeSocial  = "social"
)

// ValidContactInfoType reports whether t is a known contact-info type.
func ValidContactInfoType(t string) bool {
	return t == ContactInfoTypeContact || t == ContactInfoTypeSocial
}

// ContactInfo is a display row on the public contact section: a labelled
// value (email address, phone number, profile URL) with its icon tag.
// Only active rows are served publicly, ordered by DisplayOrder.
type ContactInfo struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	Icon         Icon      `json:"icon"`
	Type         string    `json:"type"` // "contact" | "social"
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
