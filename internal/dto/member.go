package dto

import (
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// --- Member directory DTOs ---

// MemberResponse defines the directory data returned for a member.
type MemberResponse struct {
	MemberID     string `json:"memberID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	SymbolicName string `json:"symbolicName,omitempty"`
	Office       string `json:"office"`
	Degree       int    `json:"degree"`
	IsActive     bool   `json:"isActive"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		Username:     m.Username,
		Name:         m.Name,
		SymbolicName: m.SymbolicName,
		Office:       string(m.Office),
		Degree:       m.Degree,
		IsActive:     m.IsActive,
	}
}

// ListMembersResponse wraps a page of directory members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// --- Auth DTOs ---

// LoginRequest defines credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued access token and the member it identifies.
type LoginResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}
