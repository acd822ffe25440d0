package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// ritualRoleService manages office-to-member assignments on a plan. Roles may
// be managed at any plan status; only the authorization gate restricts them.
type ritualRoleService struct {
	roleRepo   portsrepo.RitualRoleRepository
	ritualRepo portsrepo.RitualPlanReader
	memberRepo portsrepo.MemberReader

	// uniqueRoleTypes rejects a second role of the same non-custom type on one
	// plan. Off by default; deployments wanting parity with the historical
	// lodge records enable it.
	uniqueRoleTypes bool
}

// NewRitualRoleService creates a new role assignment service.
func NewRitualRoleService(roleRepo portsrepo.RitualRoleRepository, ritualRepo portsrepo.RitualPlanReader, memberRepo portsrepo.MemberReader, uniqueRoleTypes bool) portssvc.RitualRoleSvcFacade {
	return &ritualRoleService{
		roleRepo:        roleRepo,
		ritualRepo:      ritualRepo,
		memberRepo:      memberRepo,
		uniqueRoleTypes: uniqueRoleTypes,
	}
}

var _ portssvc.RitualRoleSvcFacade = (*ritualRoleService)(nil)

// validateRoleType checks the type value and its custom-label requirement.
func validateRoleType(roleType domain.RoleType, customRole string) error {
	if !roleType.Valid() {
		return apperrors.NewValidationFailedError("unknown role type " + string(roleType))
	}
	if roleType == domain.RoleCustom && customRole == "" {
		return apperrors.NewValidationFailedError("custom role requires a label")
	}
	return nil
}

// loadRoleForRitual retrieves a role and verifies it belongs to the plan.
func (s *ritualRoleService) loadRoleForRitual(ctx context.Context, ritualID, roleID string) (*domain.RitualRole, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.RitualID != ritualID {
		return nil, apperrors.NewNotFoundError("role " + roleID + " does not belong to ritual plan " + ritualID)
	}
	return role, nil
}

func (s *ritualRoleService) checkUniqueRoleType(ctx context.Context, ritualID string, roleType domain.RoleType, excludeRoleID string) error {
	if !s.uniqueRoleTypes || roleType == domain.RoleCustom {
		return nil
	}
	existing, err := s.roleRepo.FindRoleByType(ctx, ritualID, roleType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.RoleID != excludeRoleID {
		return apperrors.NewConflictError("role type " + string(roleType) + " is already assigned on ritual plan " + ritualID)
	}
	return nil
}

// AddRole adds a role assignment to a plan.
func (s *ritualRoleService) AddRole(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddRoleRequest) (*domain.RitualRole, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageRoles, plan); err != nil {
		logger.Warn("Authorization failed for AddRole", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	roleType := domain.RoleType(req.RoleType)
	if err := validateRoleType(roleType, req.CustomRole); err != nil {
		return nil, err
	}
	if err := s.checkUniqueRoleType(ctx, ritualID, roleType, ""); err != nil {
		return nil, err
	}
	if req.AssignedTo != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	customRole := ""
	if roleType == domain.RoleCustom {
		customRole = req.CustomRole
	}

	now := time.Now().UTC()
	role := domain.RitualRole{
		RoleID:      uuid.NewString(),
		RitualID:    ritualID,
		RoleType:    roleType,
		CustomRole:  customRole,
		AssignedTo:  req.AssignedTo,
		Notes:       req.Notes,
		IsConfirmed: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.MemberID,
		},
	}

	if err := s.roleRepo.SaveRole(ctx, role); err != nil {
		logger.Error("Failed to save ritual role in repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, fmt.Errorf("failed to add role to ritual plan %s: %w", ritualID, err)
	}

	logger.Info("Ritual role added", slog.String("ritual_id", ritualID), slog.String("role_id", role.RoleID), slog.String("role_type", string(roleType)))
	return &role, nil
}

// UpdateRole edits a role assignment in place.
func (s *ritualRoleService) UpdateRole(ctx context.Context, actor domain.Actor, ritualID, roleID string, req dto.UpdateRoleRequest) (*domain.RitualRole, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageRoles, plan); err != nil {
		logger.Warn("Authorization failed for UpdateRole", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	role, err := s.loadRoleForRitual(ctx, ritualID, roleID)
	if err != nil {
		return nil, err
	}

	if req.RoleType != nil {
		role.RoleType = domain.RoleType(*req.RoleType)
	}
	if req.CustomRole != nil {
		role.CustomRole = *req.CustomRole
	}
	if err := validateRoleType(role.RoleType, role.CustomRole); err != nil {
		return nil, err
	}
	if role.RoleType != domain.RoleCustom {
		role.CustomRole = ""
	}
	if err := s.checkUniqueRoleType(ctx, ritualID, role.RoleType, role.RoleID); err != nil {
		return nil, err
	}
	if req.AssignedTo != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
		role.AssignedTo = req.AssignedTo
	}
	if req.Notes != nil {
		role.Notes = *req.Notes
	}

	role.LastUpdatedAt = time.Now().UTC()
	role.LastUpdatedBy = actor.MemberID

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		logger.Error("Failed to update ritual role in repository", slog.String("error", err.Error()), slog.String("role_id", roleID))
		return nil, err
	}

	logger.Info("Ritual role updated", slog.String("ritual_id", ritualID), slog.String("role_id", roleID))
	return role, nil
}

// RemoveRole detaches a role assignment from a plan.
func (s *ritualRoleService) RemoveRole(ctx context.Context, actor domain.Actor, ritualID, roleID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return err
	}
	if err := AuthorizeRitualAction(actor, OpManageRoles, plan); err != nil {
		logger.Warn("Authorization failed for RemoveRole", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return err
	}

	if _, err := s.loadRoleForRitual(ctx, ritualID, roleID); err != nil {
		return err
	}

	if err := s.roleRepo.DeleteRole(ctx, roleID); err != nil {
		logger.Error("Failed to delete ritual role in repository", slog.String("error", err.Error()), slog.String("role_id", roleID))
		return err
	}

	logger.Info("Ritual role removed", slog.String("ritual_id", ritualID), slog.String("role_id", roleID))
	return nil
}

// AssignRole binds a member to an existing role. Assignment does not imply
// confirmation; the confirmation flag is left untouched.
func (s *ritualRoleService) AssignRole(ctx context.Context, actor domain.Actor, ritualID, roleID, memberID string) (*domain.RitualRole, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageRoles, plan); err != nil {
		logger.Warn("Authorization failed for AssignRole", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	role, err := s.loadRoleForRitual(ctx, ritualID, roleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		return nil, err
	}

	role.AssignedTo = &memberID
	role.LastUpdatedAt = time.Now().UTC()
	role.LastUpdatedBy = actor.MemberID

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		logger.Error("Failed to assign ritual role in repository", slog.String("error", err.Error()), slog.String("role_id", roleID))
		return nil, err
	}

	logger.Info("Ritual role assigned", slog.String("ritual_id", ritualID), slog.String("role_id", roleID), slog.String("assigned_member_id", memberID))
	return role, nil
}

// ConfirmRole sets or clears the explicit confirmation flag.
func (s *ritualRoleService) ConfirmRole(ctx context.Context, actor domain.Actor, ritualID, roleID string, confirmed bool) (*domain.RitualRole, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageRoles, plan); err != nil {
		logger.Warn("Authorization failed for ConfirmRole", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	role, err := s.loadRoleForRitual(ctx, ritualID, roleID)
	if err != nil {
		return nil, err
	}

	role.IsConfirmed = confirmed
	role.LastUpdatedAt = time.Now().UTC()
	role.LastUpdatedBy = actor.MemberID

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		logger.Error("Failed to update ritual role confirmation in repository", slog.String("error", err.Error()), slog.String("role_id", roleID))
		return nil, err
	}

	logger.Info("Ritual role confirmation changed", slog.String("ritual_id", ritualID), slog.String("role_id", roleID), slog.Bool("confirmed", confirmed))
	return role, nil
}

// ListRoles returns the plan's role assignments.
func (s *ritualRoleService) ListRoles(ctx context.Context, ritualID string) ([]domain.RitualRole, error) {
	if _, err := s.ritualRepo.FindRitualByID(ctx, ritualID); err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.ListRolesByRitualID(ctx, ritualID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for ritual plan %s: %w", ritualID, err)
	}
	if roles == nil {
		roles = []domain.RitualRole{}
	}
	return roles, nil
}
