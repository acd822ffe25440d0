package domain

import "time"

// RitualType enumerates the kinds of ceremonial works a lodge schedules.
type RitualType string

const (
	RitualRegular      RitualType = "regular"
	RitualInitiation   RitualType = "initiation"
	RitualPassing      RitualType = "passing"
	RitualRaising      RitualType = "raising"
	RitualInstallation RitualType = "installation"
	RitualSpecial      RitualType = "special"
	RitualInstruction  RitualType = "instruction"
	RitualOther        RitualType = "other"
)

// Valid reports whether the ritual type is one of the known values.
func (t RitualType) Valid() bool {
	switch t {
	case RitualRegular, RitualInitiation, RitualPassing, RitualRaising,
		RitualInstallation, RitualSpecial, RitualInstruction, RitualOther:
		return true
	}
	return false
}

// RitualStatus indicates where a ritual plan is in its lifecycle.
type RitualStatus string

const (
	RitualDraft     RitualStatus = "draft"
	RitualApproved  RitualStatus = "approved"
	RitualCompleted RitualStatus = "completed"
	RitualCancelled RitualStatus = "cancelled"
)

// CanTransitionTo reports whether the status may legally move to target.
// Completed and cancelled are terminal.
func (s RitualStatus) CanTransitionTo(target RitualStatus) bool {
	switch s {
	case RitualDraft:
		return target == RitualApproved || target == RitualCancelled
	case RitualApproved:
		return target == RitualCompleted || target == RitualCancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are permitted.
func (s RitualStatus) IsTerminal() bool {
	return s == RitualCompleted || s == RitualCancelled
}

// Valid reports whether the status is one of the known values.
func (s RitualStatus) Valid() bool {
	switch s {
	case RitualDraft, RitualApproved, RitualCompleted, RitualCancelled:
		return true
	}
	return false
}

// RitualPlan represents one scheduled ceremonial work of the lodge.
type RitualPlan struct {
	RitualID    string       `json:"ritualID"` // Primary Key (UUID)
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	StartTime   string       `json:"startTime"`         // "HH:MM", lodge-local
	EndTime     *string      `json:"endTime,omitempty"` // optional "HH:MM"
	RitualType  RitualType   `json:"ritualType"`
	Degree      int          `json:"degree"` // degree the work is opened in (1-3)
	Status      RitualStatus `json:"status"`
	EventID     *string      `json:"eventID,omitempty"` // optional link to a calendar event
	ApprovedBy  *string      `json:"approvedBy,omitempty"`
	Version     int64        `json:"version"` // optimistic concurrency token
	AuditFields
}

// IsEditable reports whether core plan fields may still be changed.
// Edits are restricted to draft plans; approval freezes the plan.
func (p *RitualPlan) IsEditable() bool {
	return p.Status == RitualDraft
}

// RitualListFilter narrows a plan listing. Zero values mean "no filter".
type RitualListFilter struct {
	Search     string // matches title or description, case-insensitive
	Status     RitualStatus
	RitualType RitualType
	Degree     int
	DateFrom   *time.Time
	DateTo     *time.Time
	Upcoming   bool // only plans scheduled today or later
}
