package dto

import (
	"time"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Ritual plan DTOs ---

// CreateRitualRequest defines data for creating a new ritual plan.
type CreateRitualRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string  `json:"startTime" binding:"required,datetime=15:04"`
	EndTime     *string `json:"endTime,omitempty" binding:"omitempty,datetime=15:04"`
	RitualType  string  `json:"ritualType" binding:"required"`
	Degree      int     `json:"degree" binding:"required,min=1,max=3"`
	EventID     *string `json:"eventID,omitempty"`
}

// UpdateRitualRequest defines data for editing core plan fields. All fields
// are optional; only present fields are changed. Edits are only accepted
// while the plan is in draft.
type UpdateRitualRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"startTime,omitempty" binding:"omitempty,datetime=15:04"`
	EndTime     *string `json:"endTime,omitempty" binding:"omitempty,datetime=15:04"`
	RitualType  *string `json:"ritualType,omitempty"`
	Degree      *int    `json:"degree,omitempty" binding:"omitempty,min=1,max=3"`
	EventID     *string `json:"eventID,omitempty"`
}

// ListRitualsRequest carries the listing filters from query parameters.
type ListRitualsRequest struct {
	Search     string  `form:"search"`
	Status     string  `form:"status"`
	RitualType string  `form:"ritual_type"`
	Degree     int     `form:"degree" binding:"omitempty,min=1,max=3"`
	DateFrom   string  `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string  `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Upcoming   bool    `form:"upcoming"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken  *string `form:"nextToken"`
}

// RitualResponse defines data returned for a ritual plan.
type RitualResponse struct {
	RitualID    string    `json:"ritualID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     *string   `json:"endTime,omitempty"`
	RitualType  string    `json:"ritualType"`
	Degree      int       `json:"degree"`
	Status      string    `json:"status"`
	EventID     *string   `json:"eventID,omitempty"`
	ApprovedBy  *string   `json:"approvedBy,omitempty"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToRitualResponse converts domain.RitualPlan to DTO.
func ToRitualResponse(p *domain.RitualPlan) RitualResponse {
	return RitualResponse{
		RitualID:    p.RitualID,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		RitualType:  string(p.RitualType),
		Degree:      p.Degree,
		Status:      string(p.Status),
		EventID:     p.EventID,
		ApprovedBy:  p.ApprovedBy,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ListRitualsResponse wraps a page of ritual plans.
type ListRitualsResponse struct {
	Rituals   []RitualResponse `json:"rituals"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToListRitualsResponse converts a slice of domain.RitualPlan to DTO.
func ToListRitualsResponse(plans []domain.RitualPlan, nextToken *string) ListRitualsResponse {
	list := make([]RitualResponse, len(plans))
	for i, p := range plans {
		list[i] = ToRitualResponse(&p)
	}
	return ListRitualsResponse{Rituals: list, NextToken: nextToken}
}
