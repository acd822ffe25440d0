package dto

import (
	"time"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Ritual minutes DTOs ---

// CreateMinutesRequest defines data for creating the minutes of a completed plan.
type CreateMinutesRequest struct {
	Content         string `json:"content" binding:"required"`
	AttendanceCount int    `json:"attendanceCount" binding:"min=0"`
	VisitorsCount   int    `json:"visitorsCount" binding:"min=0"`
}

// UpdateMinutesRequest defines data for editing draft minutes. All fields are
// optional; only present fields are changed.
type UpdateMinutesRequest struct {
	Content         *string `json:"content,omitempty"`
	AttendanceCount *int    `json:"attendanceCount,omitempty" binding:"omitempty,min=0"`
	VisitorsCount   *int    `json:"visitorsCount,omitempty" binding:"omitempty,min=0"`
}

// MinutesResponse defines data returned for a minutes record.
type MinutesResponse struct {
	MinutesID       string    `json:"minutesID"`
	RitualID        string    `json:"ritualID"`
	Content         string    `json:"content"`
	AttendanceCount int       `json:"attendanceCount"`
	VisitorsCount   int       `json:"visitorsCount"`
	Status          string    `json:"status"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToMinutesResponse converts domain.RitualMinutes to DTO.
func ToMinutesResponse(m *domain.RitualMinutes) MinutesResponse {
	return MinutesResponse{
		MinutesID:       m.MinutesID,
		RitualID:        m.RitualID,
		Content:         m.Content,
		AttendanceCount: m.AttendanceCount,
		VisitorsCount:   m.VisitorsCount,
		Status:          string(m.Status),
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
		UpdatedAt:       m.LastUpdatedAt,
	}
}
