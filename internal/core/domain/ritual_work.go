package domain

// WorkType enumerates the kinds of agenda items presented during a ritual.
type WorkType string

const (
	WorkLecture     WorkType = "lecture"
	WorkRitual      WorkType = "ritual"
	WorkInstruction WorkType = "instruction"
	WorkDiscussion  WorkType = "discussion"
	WorkOther       WorkType = "other"
)

// Valid reports whether the work type is one of the known values.
func (t WorkType) Valid() bool {
	switch t {
	case WorkLecture, WorkRitual, WorkInstruction, WorkDiscussion, WorkOther:
		return true
	}
	return false
}

// WorkStatus indicates the state of a single agenda item. It advances
// independently of the parent plan's status.
type WorkStatus string

const (
	WorkPending    WorkStatus = "pending"
	WorkInProgress WorkStatus = "in_progress"
	WorkCompleted  WorkStatus = "completed"
	WorkCancelled  WorkStatus = "cancelled"
)

// Valid reports whether the work status is one of the known values.
func (s WorkStatus) Valid() bool {
	switch s {
	case WorkPending, WorkInProgress, WorkCompleted, WorkCancelled:
		return true
	}
	return false
}

// DefaultWorkDuration is the estimated duration assigned when none is given.
const DefaultWorkDuration = 15

// RitualWork is one agenda item within a ritual plan.
// Order values need not be contiguous; display ordering is by Order with
// ties broken by insertion order.
type RitualWork struct {
	WorkID            string     `json:"workID"`   // Primary Key (UUID)
	RitualID          string     `json:"ritualID"` // FK -> ritual_plans.ritual_id
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	WorkType          WorkType   `json:"workType"`
	Responsible       *string    `json:"responsible,omitempty"` // MemberID reference
	EstimatedDuration int        `json:"estimatedDuration"`     // minutes, positive
	Order             int        `json:"order"`                 // agenda position, positive
	Status            WorkStatus `json:"status"`
	AttachmentID      *string    `json:"attachmentID,omitempty"` // FK -> ritual_attachments
	AuditFields
}
