package dto

import (
	"time"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Ritual attachment DTOs ---

// AddAttachmentRequest defines metadata for a document attached to a plan.
// The file bytes are uploaded to external storage by the integrator; fileKey
// is the resulting opaque reference.
type AddAttachmentRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description"`
	AttachmentType string `json:"attachmentType" binding:"required"`
	FileKey        string `json:"fileKey" binding:"required"`
}

// AttachmentResponse defines data returned for an attachment record.
type AttachmentResponse struct {
	AttachmentID   string    `json:"attachmentID"`
	RitualID       string    `json:"ritualID"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AttachmentType string    `json:"attachmentType"`
	FileKey        string    `json:"fileKey"`
	UploadedBy     string    `json:"uploadedBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAttachmentResponse converts domain.RitualAttachment to DTO.
func ToAttachmentResponse(a *domain.RitualAttachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:   a.AttachmentID,
		RitualID:       a.RitualID,
		Title:          a.Title,
		Description:    a.Description,
		AttachmentType: string(a.AttachmentType),
		FileKey:        a.FileKey,
		UploadedBy:     a.UploadedBy,
		CreatedAt:      a.CreatedAt,
	}
}

// ListAttachmentsResponse wraps a plan's attachment records.
type ListAttachmentsResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
}

// ToListAttachmentsResponse converts a slice of domain.RitualAttachment to DTO.
func ToListAttachmentsResponse(attachments []domain.RitualAttachment) ListAttachmentsResponse {
	list := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		list[i] = ToAttachmentResponse(&a)
	}
	return ListAttachmentsResponse{Attachments: list}
}
