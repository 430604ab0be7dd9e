package models

import (
	"strings"
	"time"
)

// IdeaStatus is the closed set of idea lifecycle states
type IdeaStatus string

// Idea status constants
const (
	IdeaStatusNew        IdeaStatus = "new"
	IdeaStatusInProgress IdeaStatus = "in_progress"
	IdeaStatusCompleted  IdeaStatus = "completed"
	IdeaStatusArchived   IdeaStatus = "archived"
)

// Valid reports whether the status belongs to the closed set
func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaStatusNew, IdeaStatusInProgress, IdeaStatusCompleted, IdeaStatusArchived:
		return true
	}
	return false
}

// Idea represents a project idea or concept
type Idea struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      IdeaStatus `json:"status"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IdeaRequest represents the idea create/update payload
type IdeaRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      IdeaStatus `json:"status"`
	Priority    int        `json:"priority"`
}

// Validate checks the idea payload; an empty status defaults to "new"
func (r *IdeaRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || len(r.Title) > 100 {
		return NewValidationError("title", "title is required and must be at most 100 characters")
	}
	if r.Status == "" {
		r.Status = IdeaStatusNew
	}
	if !r.Status.Valid() {
		return NewValidationError("status", "status must be one of new, in_progress, completed, archived")
	}
	if r.Priority < 0 {
		return NewValidationError("priority", "priority cannot be negative")
	}
	return nil
}

// ToIdea converts the request into an idea model
func (r *IdeaRequest) ToIdea() *Idea {
	return &Idea{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}
