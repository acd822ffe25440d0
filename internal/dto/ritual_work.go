package dto

import (
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Ritual work (agenda item) DTOs ---

// AddWorkRequest defines data for adding an agenda item to a plan. Order is
// optional; when omitted the item is appended after the current agenda.
type AddWorkRequest struct {
	Title             string  `json:"title" binding:"required,max=200"`
	Description       string  `json:"description"`
	WorkType          string  `json:"workType" binding:"required"`
	Responsible       *string `json:"responsible,omitempty"`
	EstimatedDuration int     `json:"estimatedDuration" binding:"omitempty,min=1"`
	Order             int     `json:"order" binding:"omitempty,min=1"`
	AttachmentID      *string `json:"attachmentID,omitempty"`
}

// UpdateWorkRequest defines data for editing an agenda item. All fields are
// optional; only present fields are changed.
type UpdateWorkRequest struct {
	Title             *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description       *string `json:"description,omitempty"`
	WorkType          *string `json:"workType,omitempty"`
	Responsible       *string `json:"responsible,omitempty"`
	EstimatedDuration *int    `json:"estimatedDuration,omitempty" binding:"omitempty,min=1"`
	Order             *int    `json:"order,omitempty" binding:"omitempty,min=1"`
	AttachmentID      *string `json:"attachmentID,omitempty"`
}

// UpdateWorkStatusRequest defines data for advancing an agenda item's status.
type UpdateWorkStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WorkResponse defines data returned for an agenda item.
type WorkResponse struct {
	WorkID            string  `json:"workID"`
	RitualID          string  `json:"ritualID"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	WorkType          string  `json:"workType"`
	Responsible       *string `json:"responsible,omitempty"`
	EstimatedDuration int     `json:"estimatedDuration"`
	Order             int     `json:"order"`
	Status            string  `json:"status"`
	AttachmentID      *string `json:"attachmentID,omitempty"`
}

// ToWorkResponse converts domain.RitualWork to DTO.
func ToWorkResponse(w *domain.RitualWork) WorkResponse {
	return WorkResponse{
		WorkID:            w.WorkID,
		RitualID:          w.RitualID,
		Title:             w.Title,
		Description:       w.Description,
		WorkType:          string(w.WorkType),
		Responsible:       w.Responsible,
		EstimatedDuration: w.EstimatedDuration,
		Order:             w.Order,
		Status:            string(w.Status),
		AttachmentID:      w.AttachmentID,
	}
}

// ListWorksResponse wraps a plan's agenda in display order.
type ListWorksResponse struct {
	Works []WorkResponse `json:"works"`
}

// ToListWorksResponse converts a slice of domain.RitualWork to DTO.
func ToListWorksResponse(works []domain.RitualWork) ListWorksResponse {
	list := make([]WorkResponse, len(works))
	for i, w := range works {
		list[i] = ToWorkResponse(&w)
	}
	return ListWorksResponse{Works: list}
}
