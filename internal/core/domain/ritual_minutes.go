package domain

// MinutesStatus indicates the state of a minutes record.
type MinutesStatus string

const (
	MinutesDraft     MinutesStatus = "draft"
	MinutesFinalized MinutesStatus = "finalized"
)

// RitualMinutes is the post-ceremony record of a completed plan. At most one
// exists per plan, and only once the plan is completed. A finalized record is
// immutable; there is no un-finalize.
type RitualMinutes struct {
	MinutesID       string        `json:"minutesID"` // Primary Key (UUID)
	RitualID        string        `json:"ritualID"`  // FK -> ritual_plans.ritual_id, unique
	Content         string        `json:"content"`
	AttendanceCount int           `json:"attendanceCount"` // >= 0
	VisitorsCount   int           `json:"visitorsCount"`   // >= 0, defaults 0
	Status          MinutesStatus `json:"status"`
	Version         int64         `json:"version"` // optimistic concurrency token
	AuditFields
}

// IsEditable reports whether the minutes may still be changed.
func (m *RitualMinutes) IsEditable() bool {
	return m.Status == MinutesDraft
}
