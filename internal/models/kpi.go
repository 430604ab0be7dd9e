package models

import (
	"strings"
	"time"
)

// KPI represents a key performance indicator
type KPI struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  *float64   `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit,omitempty"`
	Category     string     `json:"category,omitempty"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ProgressPercentage calculates completion against the target, clamped to [0, 100].
// Returns 0 when no positive target is set.
func (k *KPI) ProgressPercentage() float64 {
	if k.TargetValue == nil || *k.TargetValue <= 0 {
		return 0
	}
	progress := k.CurrentValue / *k.TargetValue * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// KPIResponse is the serialized KPI including the computed progress
type KPIResponse struct {
	KPI
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ToResponse converts the KPI into its API response shape
func (k *KPI) ToResponse() KPIResponse {
	return KPIResponse{KPI: *k, ProgressPercentage: k.ProgressPercentage()}
}

// KPIRequest represents the KPI create/update payload
type KPIRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetValue  *float64   `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit"`
	Category     string     `json:"category"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// Validate checks the KPI payload
func (r *KPIRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || len(r.Title) > 100 {
		return NewValidationError("title", "title is required and must be at most 100 characters")
	}
	if r.TargetValue != nil && *r.TargetValue < 0 {
		return NewValidationError("target_value", "target value cannot be negative")
	}
	if len(r.Unit) > 20 {
		return NewValidationError("unit", "unit must be at most 20 characters")
	}
	if len(r.Category) > 50 {
		return NewValidationError("category", "category must be at most 50 characters")
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return NewValidationError("end_date", "end date cannot be before start date")
	}
	return nil
}

// ToKPI converts the request into a KPI model
func (r *KPIRequest) ToKPI() *KPI {
	return &KPI{
		Title:        r.Title,
		Description:  r.Description,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		Category:     r.Category,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}
