package services

import (
	"context"
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

const defaultListLimit = 20

// ritualService owns the plan lifecycle: creation, core-field edits and the
// draft -> approved -> completed / cancelled state machine.
type ritualService struct {
	ritualRepo portsrepo.RitualPlanRepositoryWithTx
}

// NewRitualService creates a new ritual plan lifecycle service.
func NewRitualService(ritualRepo portsrepo.RitualPlanRepositoryWithTx) portssvc.RitualSvcFacade {
	return &ritualService{ritualRepo: ritualRepo}
}

var _ portssvc.RitualSvcFacade = (*ritualService)(nil)

// CreateRitual creates a new plan in draft with the actor recorded as creator.
func (s *ritualService) CreateRitual(ctx context.Context, actor domain.Actor, req dto.CreateRitualRequest) (*domain.RitualPlan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := AuthorizeRitualAction(actor, OpCreateRitual, nil); err != nil {
		logger.Warn("Authorization failed for CreateRitual", slog.String("member_id", actor.MemberID))
		return nil, err
	}

	ritualType := domain.RitualType(req.RitualType)
	if !ritualType.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown ritual type " + req.RitualType)
	}
	if req.Degree < 1 || req.Degree > 3 {
		return nil, apperrors.NewValidationFailedError("degree must be between 1 and 3")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	plan := domain.RitualPlan{
		RitualID:    uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		RitualType:  ritualType,
		Degree:      req.Degree,
		Status:      domain.RitualDraft,
		EventID:     req.EventID,
		Version:     1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.MemberID,
		},
	}

	if err := s.ritualRepo.SaveRitual(ctx, plan); err != nil {
		logger.Error("Failed to save ritual plan in repository", slog.String("error", err.Error()), slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create ritual plan: %w", err)
	}

	logger.Info("Ritual plan created", slog.String("ritual_id", plan.RitualID), slog.String("creator_member_id", actor.MemberID))
	return &plan, nil
}

// GetRitualByID retrieves a single plan.
func (s *ritualService) GetRitualByID(ctx context.Context, ritualID string) (*domain.RitualPlan, error) {
	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ListRituals retrieves plans matching the filter with cursor pagination.
func (s *ritualService) ListRituals(ctx context.Context, filter domain.RitualListFilter, limit int, nextToken *string) ([]domain.RitualPlan, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	plans, token, err := s.ritualRepo.ListRituals(ctx, filter, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list ritual plans from repository", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list ritual plans: %w", err)
	}
	if plans == nil {
		plans = []domain.RitualPlan{}
	}
	return plans, token, nil
}

// UpdateRitual edits core plan fields. Only draft plans are editable; any
// other status yields ErrConflict without touching stored state.
func (s *ritualService) UpdateRitual(ctx context.Context, actor domain.Actor, ritualID string, req dto.UpdateRitualRequest) (*domain.RitualPlan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeRitualAction(actor, OpEditRitual, plan); err != nil {
		logger.Warn("Authorization failed for UpdateRitual", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	if !plan.IsEditable() {
		return nil, apperrors.NewConflictError("ritual plan " + ritualID + " is " + string(plan.Status) + " and can no longer be edited")
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		plan.Date = date
	}
	if req.StartTime != nil {
		plan.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		plan.EndTime = req.EndTime
	}
	if req.RitualType != nil {
		ritualType := domain.RitualType(*req.RitualType)
		if !ritualType.Valid() {
			return nil, apperrors.NewValidationFailedError("unknown ritual type " + *req.RitualType)
		}
		plan.RitualType = ritualType
	}
	if req.Degree != nil {
		if *req.Degree < 1 || *req.Degree > 3 {
			return nil, apperrors.NewValidationFailedError("degree must be between 1 and 3")
		}
		plan.Degree = *req.Degree
	}
	if req.EventID != nil {
		plan.EventID = req.EventID
	}

	plan.LastUpdatedAt = time.Now().UTC()
	plan.LastUpdatedBy = actor.MemberID

	if err := s.ritualRepo.UpdateRitualFields(ctx, *plan); err != nil {
		logger.Error("Failed to update ritual plan in repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, err
	}
	plan.Version++

	logger.Info("Ritual plan updated", slog.String("ritual_id", ritualID))
	return plan, nil
}

// TransitionRitual moves the plan to the target status. The lifecycle table
// and the per-transition authorization rules are both enforced here; a lost
// concurrent race surfaces as ErrConflict from the repository's conditional
// write.
func (s *ritualService) TransitionRitual(ctx context.Context, actor domain.Actor, ritualID string, target domain.RitualStatus) (*domain.RitualPlan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	op, ok := transitionOperation(target)
	if !ok {
		return nil, apperrors.NewValidationFailedError("invalid target status " + string(target))
	}

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeRitualAction(actor, op, plan); err != nil {
		logger.Warn("Authorization failed for TransitionRitual",
			slog.String("member_id", actor.MemberID),
			slog.String("ritual_id", ritualID),
			slog.String("target_status", string(target)))
		return nil, err
	}

	if !plan.Status.CanTransitionTo(target) {
		return nil, apperrors.NewConflictError("ritual plan " + ritualID + " cannot move from " + string(plan.Status) + " to " + string(target))
	}

	plan.Status = target
	if target == domain.RitualApproved {
		approver := actor.MemberID
		plan.ApprovedBy = &approver
	}
	plan.LastUpdatedAt = time.Now().UTC()
	plan.LastUpdatedBy = actor.MemberID

	if err := s.ritualRepo.UpdateRitualStatus(ctx, *plan); err != nil {
		logger.Warn("Ritual plan transition rejected by repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, err
	}
	plan.Version++

	logger.Info("Ritual plan transitioned",
		slog.String("ritual_id", ritualID),
		slog.String("status", string(target)),
		slog.String("member_id", actor.MemberID))
	return plan, nil
}
