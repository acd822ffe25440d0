package dto

import (
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Ritual role DTOs ---

// AddRoleRequest defines data for adding a role assignment to a plan.
type AddRoleRequest struct {
	RoleType   string  `json:"roleType" binding:"required"`
	CustomRole string  `json:"customRole,omitempty" binding:"omitempty,max=100"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      string  `json:"notes"`
}

// UpdateRoleRequest defines data for editing a role assignment. All fields
// are optional; only present fields are changed.
type UpdateRoleRequest struct {
	RoleType   *string `json:"roleType,omitempty"`
	CustomRole *string `json:"customRole,omitempty" binding:"omitempty,max=100"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// AssignRoleRequest defines data for assigning a member to an existing role.
type AssignRoleRequest struct {
	MemberID string `json:"memberID" binding:"required"`
}

// RoleResponse defines data returned for a role assignment.
type RoleResponse struct {
	RoleID       string  `json:"roleID"`
	RitualID     string  `json:"ritualID"`
	RoleType     string  `json:"roleType"`
	CustomRole   string  `json:"customRole,omitempty"`
	AssignedTo   *string `json:"assignedTo,omitempty"`
	AssignedName string  `json:"assignedName,omitempty"` // resolved display name
	Notes        string  `json:"notes"`
	IsConfirmed  bool    `json:"isConfirmed"`
}

// ToRoleResponse converts domain.RitualRole to DTO. assignedName may be empty
// when the caller did not resolve the member directory.
func ToRoleResponse(r *domain.RitualRole, assignedName string) RoleResponse {
	return RoleResponse{
		RoleID:       r.RoleID,
		RitualID:     r.RitualID,
		RoleType:     string(r.RoleType),
		CustomRole:   r.CustomRole,
		AssignedTo:   r.AssignedTo,
		AssignedName: assignedName,
		Notes:        r.Notes,
		IsConfirmed:  r.IsConfirmed,
	}
}

// ListRolesResponse wraps a plan's role assignments.
type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}
