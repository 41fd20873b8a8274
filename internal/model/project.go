package model

import "time"

// Project is a portfolio work sample shown on the public site.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image,omitempty"`
	LiveURL      string    `json:"live_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
