package domain

import "time"

// Office identifies the lodge office a member currently holds.
// Don't change the codes since these values are saved in the database;
// they mirror the historical short forms used in the lodge records.
type Office string

const (
	OfficeWorshipfulMaster   Office = "vm"  // Venerable Maestro (presiding officer)
	OfficeSeniorWarden       Office = "pv"  // Primer Vigilante
	OfficeJuniorWarden       Office = "sv"  // Segundo Vigilante
	OfficeSecretary          Office = "sec" // Secretario
	OfficeTreasurer          Office = "tes" // Tesorero
	OfficeSeniorDeacon       Office = "pd"
	OfficeJuniorDeacon       Office = "sd"
	OfficeInnerGuard         Office = "gi"
	OfficeTyler              Office = "gt"
	OfficeChaplain           Office = "cap"
	OfficeOrator             Office = "ora"
	OfficeMasterOfCeremonies Office = "mce"
	OfficeExpert             Office = "exp"
	OfficeHospitaller        Office = "hos"
	OfficeMusician           Office = "mus"
	OfficeNone               Office = "none"
)

// IsPresiding reports whether the office presides over lodge works.
func (o Office) IsPresiding() bool {
	return o == OfficeWorshipfulMaster
}

// IsWarden reports whether the office is one of the two wardens.
func (o Office) IsWarden() bool {
	return o == OfficeSeniorWarden || o == OfficeJuniorWarden
}

// Valid reports whether the office value is one of the known offices.
func (o Office) Valid() bool {
	switch o {
	case OfficeWorshipfulMaster, OfficeSeniorWarden, OfficeJuniorWarden,
		OfficeSecretary, OfficeTreasurer, OfficeSeniorDeacon, OfficeJuniorDeacon,
		OfficeInnerGuard, OfficeTyler, OfficeChaplain, OfficeOrator,
		OfficeMasterOfCeremonies, OfficeExpert, OfficeHospitaller,
		OfficeMusician, OfficeNone:
		return true
	}
	return false
}

// Member represents a lodge member as known to the member directory.
type Member struct {
	MemberID     string `json:"memberID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	SymbolicName string `json:"symbolicName"` // Name used inside the lodge, may be empty
	Office       Office `json:"office"`
	Degree       int    `json:"degree"` // 1 = Apprentice, 2 = Fellow, 3 = Master
	IsActive     bool   `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// DisplayName returns the name used when presenting the member,
// preferring the symbolic name when present.
func (m *Member) DisplayName() string {
	if m.SymbolicName != "" {
		return m.SymbolicName
	}
	return m.Name
}

// Actor carries the identity and authorization attributes of the member
// performing an operation. It is threaded explicitly into every engine call
// so authorization is testable without ambient request state.
type Actor struct {
	MemberID string
	Office   Office
	Degree   int
}
