package models

import (
	"strings"
	"time"
)

// SOP represents a standard operating procedure document
type SOP struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Version     string    `json:"version"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SOPRequest represents the SOP create/update payload
type SOPRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Version     string `json:"version"`
	Category    string `json:"category"`
}

// Validate checks the SOP payload; an empty version defaults to "1.0"
func (r *SOPRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || len(r.Title) > 100 {
		return NewValidationError("title", "title is required and must be at most 100 characters")
	}
	if r.Version == "" {
		r.Version = "1.0"
	}
	if len(r.Version) > 10 {
		return NewValidationError("version", "version must be at most 10 characters")
	}
	if len(r.Category) > 50 {
		return NewValidationError("category", "category must be at most 50 characters")
	}
	return nil
}

// ToSOP converts the request into a SOP model
func (r *SOPRequest) ToSOP() *SOP {
	return &SOP{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Version:     r.Version,
		Category:    r.Category,
	}
}
