package model

import "time"

// Skill is one entry of the skills grid, grouped by category on the public
// site. Level is a 0..100 proficiency percentage.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Icon      Icon      `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
