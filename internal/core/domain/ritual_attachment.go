package domain

// AttachmentType enumerates the kinds of documents attached to a plan.
type AttachmentType string

const (
	AttachmentLecture        AttachmentType = "lecture"
	AttachmentCeremonyScript AttachmentType = "ceremony_script"
	AttachmentMusic          AttachmentType = "music"
	AttachmentImage          AttachmentType = "image"
	AttachmentDiagram        AttachmentType = "diagram"
	AttachmentOther          AttachmentType = "other"
)

// Valid reports whether the attachment type is one of the known values.
func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentLecture, AttachmentCeremonyScript, AttachmentMusic,
		AttachmentImage, AttachmentDiagram, AttachmentOther:
		return true
	}
	return false
}

// RitualAttachment is the metadata record for a document attached to a plan.
// The bytes live in external storage; FileKey is the opaque reference into it.
type RitualAttachment struct {
	AttachmentID   string         `json:"attachmentID"` // Primary Key (UUID)
	RitualID       string         `json:"ritualID"`     // FK -> ritual_plans.ritual_id
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	AttachmentType AttachmentType `json:"attachmentType"`
	FileKey        string         `json:"fileKey"` // reference into external file storage
	UploadedBy     string         `json:"uploadedBy"`
	AuditFields
}
