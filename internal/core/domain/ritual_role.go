package domain

// RoleType identifies the ceremonial office a role assignment fills.
// The codes match the member Office codes where an equivalent office exists.
type RoleType string

const (
	RoleWorshipfulMaster   RoleType = "vm"
	RoleSeniorWarden       RoleType = "pv"
	RoleJuniorWarden       RoleType = "sv"
	RoleSecretary          RoleType = "sec"
	RoleTreasurer          RoleType = "tes"
	RoleSeniorDeacon       RoleType = "pd"
	RoleJuniorDeacon       RoleType = "sd"
	RoleInnerGuard         RoleType = "gi"
	RoleTyler              RoleType = "gt"
	RoleChaplain           RoleType = "cap"
	RoleOrator             RoleType = "ora"
	RoleMasterOfCeremonies RoleType = "mce"
	RoleExpert             RoleType = "exp"
	RoleHospitaller        RoleType = "hos"
	RoleMusician           RoleType = "mus"
	RoleCustom             RoleType = "custom" // requires CustomRole label
)

// Valid reports whether the role type is one of the known values.
func (r RoleType) Valid() bool {
	switch r {
	case RoleWorshipfulMaster, RoleSeniorWarden, RoleJuniorWarden,
		RoleSecretary, RoleTreasurer, RoleSeniorDeacon, RoleJuniorDeacon,
		RoleInnerGuard, RoleTyler, RoleChaplain, RoleOrator,
		RoleMasterOfCeremonies, RoleExpert, RoleHospitaller, RoleMusician,
		RoleCustom:
		return true
	}
	return false
}

// RitualRole assigns one ceremonial office to one member for one plan.
// AssignedTo may be nil while the office is still unfilled; assignment and
// confirmation are separate steps.
type RitualRole struct {
	RoleID      string   `json:"roleID"`   // Primary Key (UUID)
	RitualID    string   `json:"ritualID"` // FK -> ritual_plans.ritual_id
	RoleType    RoleType `json:"roleType"`
	CustomRole  string   `json:"customRole,omitempty"` // label, only for RoleCustom
	AssignedTo  *string  `json:"assignedTo,omitempty"` // MemberID reference
	Notes       string   `json:"notes"`
	IsConfirmed bool     `json:"isConfirmed"`
	AuditFields
}
