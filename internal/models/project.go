package models

import (
	"regexp"
	"strings"
	"time"
)

// Project represents a portfolio project
type Project struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	DemoURL         string    `json:"demo_url,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	DownloadURL     string    `json:"download_url,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// slugRegex validates URL-safe slugs
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ProjectRequest represents the project create/update payload
type ProjectRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	ImageURL        string `json:"image_url"`
	DemoURL         string `json:"demo_url"`
	GithubURL       string `json:"github_url"`
	DownloadURL     string `json:"download_url"`
	IsFeatured      bool   `json:"is_featured"`
}

// Validate checks the project payload
func (r *ProjectRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if len(r.Title) < 3 || len(r.Title) > 100 {
		return NewValidationError("title", "title must be between 3 and 100 characters")
	}
	r.Slug = strings.TrimSpace(strings.ToLower(r.Slug))
	if r.Slug == "" || !slugRegex.MatchString(r.Slug) {
		return NewValidationError("slug", "slug must contain only lowercase letters, numbers, and hyphens")
	}
	if len(strings.TrimSpace(r.Description)) < 10 {
		return NewValidationError("description", "description must be at least 10 characters")
	}
	return nil
}

// ToProject converts the request into a project model
func (r *ProjectRequest) ToProject() *Project {
	return &Project{
		Title:           r.Title,
		Slug:            r.Slug,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		ImageURL:        r.ImageURL,
		DemoURL:         r.DemoURL,
		GithubURL:       r.GithubURL,
		DownloadURL:     r.DownloadURL,
		IsFeatured:      r.IsFeatured,
	}
}
