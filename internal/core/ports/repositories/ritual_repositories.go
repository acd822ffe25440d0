package repositories

import (
	"context"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// RitualPlanReader defines read operations for ritual plan data
type RitualPlanReader interface {
	// FindRitualByID retrieves a specific ritual plan by its ID.
	FindRitualByID(ctx context.Context, ritualID string) (*domain.RitualPlan, error)

	// ListRituals retrieves plans matching the filter, ordered by date then
	// creation time descending, returning a token for the next page if any.
	ListRituals(ctx context.Context, filter domain.RitualListFilter, limit int, nextToken *string) ([]domain.RitualPlan, *string, error)
}

// RitualPlanWriter defines write operations for ritual plan data
type RitualPlanWriter interface {
	// SaveRitual persists a new ritual plan.
	SaveRitual(ctx context.Context, plan domain.RitualPlan) error

	// UpdateRitualFields updates core plan fields. The update is conditional on
	// plan.Version matching the stored row; a mismatch returns ErrConflict.
	UpdateRitualFields(ctx context.Context, plan domain.RitualPlan) error

	// UpdateRitualStatus writes a status transition. The update is conditional
	// on plan.Version matching the stored row so concurrent transitions have at
	// most one winner; a loser receives ErrConflict.
	UpdateRitualStatus(ctx context.Context, plan domain.RitualPlan) error
}

// RitualPlanRepositoryFacade combines all ritual-plan repository interfaces
type RitualPlanRepositoryFacade interface {
	RitualPlanReader
	RitualPlanWriter
}

// RitualPlanRepositoryWithTx extends the facade with transaction capabilities
type RitualPlanRepositoryWithTx interface {
	RitualPlanRepositoryFacade
	TransactionManager
}

// RitualRoleRepository defines operations for role assignments within a plan
type RitualRoleRepository interface {
	SaveRole(ctx context.Context, role domain.RitualRole) error
	FindRoleByID(ctx context.Context, roleID string) (*domain.RitualRole, error)
	// FindRoleByType retrieves the role of a given type on a plan, if any.
	// Used when per-plan role-type uniqueness is enforced.
	FindRoleByType(ctx context.Context, ritualID string, roleType domain.RoleType) (*domain.RitualRole, error)
	ListRolesByRitualID(ctx context.Context, ritualID string) ([]domain.RitualRole, error)
	UpdateRole(ctx context.Context, role domain.RitualRole) error
	DeleteRole(ctx context.Context, roleID string) error
}

// RitualWorkRepository defines operations for agenda items within a plan
type RitualWorkRepository interface {
	SaveWork(ctx context.Context, work domain.RitualWork) error
	FindWorkByID(ctx context.Context, workID string) (*domain.RitualWork, error)
	// ListWorksByRitualID returns the plan's agenda ordered by order value,
	// ties broken by creation time.
	ListWorksByRitualID(ctx context.Context, ritualID string) ([]domain.RitualWork, error)
	// NextWorkOrder returns max(existing orders) + 1 for the plan, or 1 when
	// the agenda is empty.
	NextWorkOrder(ctx context.Context, ritualID string) (int, error)
	UpdateWork(ctx context.Context, work domain.RitualWork) error
	DeleteWork(ctx context.Context, workID string) error
}

// RitualMinutesRepository defines operations for post-ceremony minutes
type RitualMinutesRepository interface {
	// SaveMinutes persists a new minutes record. A second record for the same
	// plan violates the one-per-plan constraint and returns ErrDuplicate.
	SaveMinutes(ctx context.Context, minutes domain.RitualMinutes) error
	FindMinutesByID(ctx context.Context, minutesID string) (*domain.RitualMinutes, error)
	FindMinutesByRitualID(ctx context.Context, ritualID string) (*domain.RitualMinutes, error)
	// UpdateMinutes writes content or status changes conditional on
	// minutes.Version matching the stored row; a mismatch returns ErrConflict.
	UpdateMinutes(ctx context.Context, minutes domain.RitualMinutes) error
}

// RitualAttachmentRepository defines operations for attachment metadata
type RitualAttachmentRepository interface {
	SaveAttachment(ctx context.Context, attachment domain.RitualAttachment) error
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.RitualAttachment, error)
	ListAttachmentsByRitualID(ctx context.Context, ritualID string) ([]domain.RitualAttachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}
