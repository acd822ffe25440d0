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

// ritualWorkService manages the ordered agenda of a plan. Item status moves
// independently of the parent plan's lifecycle.
type ritualWorkService struct {
	workRepo   portsrepo.RitualWorkRepository
	ritualRepo portsrepo.RitualPlanReader
	memberRepo portsrepo.MemberReader
}

// NewRitualWorkService creates a new agenda item service.
func NewRitualWorkService(workRepo portsrepo.RitualWorkRepository, ritualRepo portsrepo.RitualPlanReader, memberRepo portsrepo.MemberReader) portssvc.RitualWorkSvcFacade {
	return &ritualWorkService{
		workRepo:   workRepo,
		ritualRepo: ritualRepo,
		memberRepo: memberRepo,
	}
}

var _ portssvc.RitualWorkSvcFacade = (*ritualWorkService)(nil)

// loadWorkForRitual retrieves an agenda item and verifies it belongs to the plan.
func (s *ritualWorkService) loadWorkForRitual(ctx context.Context, ritualID, workID string) (*domain.RitualWork, error) {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if work.RitualID != ritualID {
		return nil, apperrors.NewNotFoundError("work " + workID + " does not belong to ritual plan " + ritualID)
	}
	return work, nil
}

// AddWork appends an agenda item. When no order is supplied the item takes
// max(existing orders) + 1, so an agenda with orders {1,3} yields 4.
func (s *ritualWorkService) AddWork(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddWorkRequest) (*domain.RitualWork, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for AddWork", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	workType := domain.WorkType(req.WorkType)
	if !workType.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown work type " + req.WorkType)
	}
	if req.Responsible != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.Responsible); err != nil {
			return nil, err
		}
	}

	duration := req.EstimatedDuration
	if duration <= 0 {
		duration = domain.DefaultWorkDuration
	}

	order := req.Order
	if order <= 0 {
		order, err = s.workRepo.NextWorkOrder(ctx, ritualID)
		if err != nil {
			logger.Error("Failed to compute next work order", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
			return nil, fmt.Errorf("failed to compute agenda order for ritual plan %s: %w", ritualID, err)
		}
	}

	now := time.Now().UTC()
	work := domain.RitualWork{
		WorkID:            uuid.NewString(),
		RitualID:          ritualID,
		Title:             req.Title,
		Description:       req.Description,
		WorkType:          workType,
		Responsible:       req.Responsible,
		EstimatedDuration: duration,
		Order:             order,
		Status:            domain.WorkPending,
		AttachmentID:      req.AttachmentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.MemberID,
		},
	}

	if err := s.workRepo.SaveWork(ctx, work); err != nil {
		logger.Error("Failed to save ritual work in repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, fmt.Errorf("failed to add work to ritual plan %s: %w", ritualID, err)
	}

	logger.Info("Ritual work added", slog.String("ritual_id", ritualID), slog.String("work_id", work.WorkID), slog.Int("order", order))
	return &work, nil
}

// UpdateWork edits an agenda item, including manual reordering.
func (s *ritualWorkService) UpdateWork(ctx context.Context, actor domain.Actor, ritualID, workID string, req dto.UpdateWorkRequest) (*domain.RitualWork, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for UpdateWork", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	work, err := s.loadWorkForRitual(ctx, ritualID, workID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.Description != nil {
		work.Description = *req.Description
	}
	if req.WorkType != nil {
		workType := domain.WorkType(*req.WorkType)
		if !workType.Valid() {
			return nil, apperrors.NewValidationFailedError("unknown work type " + *req.WorkType)
		}
		work.WorkType = workType
	}
	if req.Responsible != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.Responsible); err != nil {
			return nil, err
		}
		work.Responsible = req.Responsible
	}
	if req.EstimatedDuration != nil {
		if *req.EstimatedDuration <= 0 {
			return nil, apperrors.NewValidationFailedError("estimated duration must be positive")
		}
		work.EstimatedDuration = *req.EstimatedDuration
	}
	if req.Order != nil {
		if *req.Order <= 0 {
			return nil, apperrors.NewValidationFailedError("order must be positive")
		}
		work.Order = *req.Order
	}
	if req.AttachmentID != nil {
		work.AttachmentID = req.AttachmentID
	}

	work.LastUpdatedAt = time.Now().UTC()
	work.LastUpdatedBy = actor.MemberID

	if err := s.workRepo.UpdateWork(ctx, *work); err != nil {
		logger.Error("Failed to update ritual work in repository", slog.String("error", err.Error()), slog.String("work_id", workID))
		return nil, err
	}

	logger.Info("Ritual work updated", slog.String("ritual_id", ritualID), slog.String("work_id", workID))
	return work, nil
}

// RemoveWork detaches an agenda item from a plan.
func (s *ritualWorkService) RemoveWork(ctx context.Context, actor domain.Actor, ritualID, workID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for RemoveWork", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return err
	}

	if _, err := s.loadWorkForRitual(ctx, ritualID, workID); err != nil {
		return err
	}

	if err := s.workRepo.DeleteWork(ctx, workID); err != nil {
		logger.Error("Failed to delete ritual work in repository", slog.String("error", err.Error()), slog.String("work_id", workID))
		return err
	}

	logger.Info("Ritual work removed", slog.String("ritual_id", ritualID), slog.String("work_id", workID))
	return nil
}

// UpdateWorkStatus advances an agenda item's status. The parent plan's status
// is not consulted: completing a plan never forces its items along.
func (s *ritualWorkService) UpdateWorkStatus(ctx context.Context, actor domain.Actor, ritualID, workID string, status domain.WorkStatus) (*domain.RitualWork, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for UpdateWorkStatus", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown work status " + string(status))
	}

	work, err := s.loadWorkForRitual(ctx, ritualID, workID)
	if err != nil {
		return nil, err
	}

	work.Status = status
	work.LastUpdatedAt = time.Now().UTC()
	work.LastUpdatedBy = actor.MemberID

	if err := s.workRepo.UpdateWork(ctx, *work); err != nil {
		logger.Error("Failed to update ritual work status in repository", slog.String("error", err.Error()), slog.String("work_id", workID))
		return nil, err
	}

	logger.Info("Ritual work status updated", slog.String("ritual_id", ritualID), slog.String("work_id", workID), slog.String("status", string(status)))
	return work, nil
}

// ListWorks returns the plan's agenda in display order.
func (s *ritualWorkService) ListWorks(ctx context.Context, ritualID string) ([]domain.RitualWork, error) {
	if _, err := s.ritualRepo.FindRitualByID(ctx, ritualID); err != nil {
		return nil, err
	}
	works, err := s.workRepo.ListWorksByRitualID(ctx, ritualID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works for ritual plan %s: %w", ritualID, err)
	}
	if works == nil {
		works = []domain.RitualWork{}
	}
	return works, nil
}
