package services

import (
	"context"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
)

// RitualSvcFacade exposes the plan lifecycle engine. Every mutating call
// takes the acting member explicitly and returns the updated entity.
type RitualSvcFacade interface {
	// CreateRitual creates a new plan in draft with the actor as creator.
	CreateRitual(ctx context.Context, actor domain.Actor, req dto.CreateRitualRequest) (*domain.RitualPlan, error)

	// GetRitualByID retrieves a single plan.
	GetRitualByID(ctx context.Context, ritualID string) (*domain.RitualPlan, error)

	// ListRituals retrieves plans matching the filter with cursor pagination.
	ListRituals(ctx context.Context, filter domain.RitualListFilter, limit int, nextToken *string) ([]domain.RitualPlan, *string, error)

	// UpdateRitual edits core plan fields; only draft plans are editable.
	UpdateRitual(ctx context.Context, actor domain.Actor, ritualID string, req dto.UpdateRitualRequest) (*domain.RitualPlan, error)

	// TransitionRitual moves the plan to the target status, enforcing the
	// lifecycle table and the authorization rules for the transition.
	TransitionRitual(ctx context.Context, actor domain.Actor, ritualID string, target domain.RitualStatus) (*domain.RitualPlan, error)
}

// RitualRoleSvcFacade manages office-to-member assignments for a plan.
type RitualRoleSvcFacade interface {
	AddRole(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddRoleRequest) (*domain.RitualRole, error)
	UpdateRole(ctx context.Context, actor domain.Actor, ritualID, roleID string, req dto.UpdateRoleRequest) (*domain.RitualRole, error)
	RemoveRole(ctx context.Context, actor domain.Actor, ritualID, roleID string) error
	// AssignRole binds a member to an existing role. Assignment does not imply
	// confirmation.
	AssignRole(ctx context.Context, actor domain.Actor, ritualID, roleID, memberID string) (*domain.RitualRole, error)
	// ConfirmRole sets or clears the explicit confirmation flag.
	ConfirmRole(ctx context.Context, actor domain.Actor, ritualID, roleID string, confirmed bool) (*domain.RitualRole, error)
	ListRoles(ctx context.Context, ritualID string) ([]domain.RitualRole, error)
}

// RitualWorkSvcFacade manages the ordered agenda of a plan.
type RitualWorkSvcFacade interface {
	AddWork(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddWorkRequest) (*domain.RitualWork, error)
	UpdateWork(ctx context.Context, actor domain.Actor, ritualID, workID string, req dto.UpdateWorkRequest) (*domain.RitualWork, error)
	RemoveWork(ctx context.Context, actor domain.Actor, ritualID, workID string) error
	// UpdateWorkStatus advances an item's status independently of the plan's.
	UpdateWorkStatus(ctx context.Context, actor domain.Actor, ritualID, workID string, status domain.WorkStatus) (*domain.RitualWork, error)
	ListWorks(ctx context.Context, ritualID string) ([]domain.RitualWork, error)
}

// RitualMinutesSvcFacade manages the post-ceremony record.
type RitualMinutesSvcFacade interface {
	// CreateMinutes creates the plan's minutes in draft. Requires the plan to
	// be completed and no minutes to exist yet.
	CreateMinutes(ctx context.Context, actor domain.Actor, ritualID string, req dto.CreateMinutesRequest) (*domain.RitualMinutes, error)
	GetMinutesByRitualID(ctx context.Context, ritualID string) (*domain.RitualMinutes, error)
	// UpdateMinutes edits the record; only draft minutes are editable.
	UpdateMinutes(ctx context.Context, actor domain.Actor, ritualID string, req dto.UpdateMinutesRequest) (*domain.RitualMinutes, error)
	// FinalizeMinutes performs the one-way draft -> finalized transition.
	FinalizeMinutes(ctx context.Context, actor domain.Actor, ritualID string) (*domain.RitualMinutes, error)
}

// RitualAttachmentSvcFacade manages attachment metadata for a plan.
type RitualAttachmentSvcFacade interface {
	AddAttachment(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddAttachmentRequest) (*domain.RitualAttachment, error)
	ListAttachments(ctx context.Context, ritualID string) ([]domain.RitualAttachment, error)
	RemoveAttachment(ctx context.Context, actor domain.Actor, ritualID, attachmentID string) error
}
