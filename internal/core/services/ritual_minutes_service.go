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

// ritualMinutesService manages the post-ceremony record. Minutes exist only
// for completed plans, at most one per plan, and a finalized record is an
// immutable audit document.
type ritualMinutesService struct {
	minutesRepo portsrepo.RitualMinutesRepository
	ritualRepo  portsrepo.RitualPlanReader
}

// NewRitualMinutesService creates a new minutes service.
func NewRitualMinutesService(minutesRepo portsrepo.RitualMinutesRepository, ritualRepo portsrepo.RitualPlanReader) portssvc.RitualMinutesSvcFacade {
	return &ritualMinutesService{
		minutesRepo: minutesRepo,
		ritualRepo:  ritualRepo,
	}
}

var _ portssvc.RitualMinutesSvcFacade = (*ritualMinutesService)(nil)

// CreateMinutes creates the plan's minutes in draft. The plan must be
// completed and must not have minutes yet; both are preconditions, not
// authorization concerns, so they fail with ErrPreconditionFailed regardless
// of the actor's office.
func (s *ritualMinutesService) CreateMinutes(ctx context.Context, actor domain.Actor, ritualID string, req dto.CreateMinutesRequest) (*domain.RitualMinutes, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpCreateMinutes, plan); err != nil {
		logger.Warn("Authorization failed for CreateMinutes", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	if plan.Status != domain.RitualCompleted {
		return nil, apperrors.NewPreconditionFailedError("minutes require a completed ritual plan; plan " + ritualID + " is " + string(plan.Status))
	}
	if req.AttendanceCount < 0 || req.VisitorsCount < 0 {
		return nil, apperrors.NewValidationFailedError("attendance and visitor counts must not be negative")
	}

	if _, err := s.minutesRepo.FindMinutesByRitualID(ctx, ritualID); err == nil {
		return nil, apperrors.NewPreconditionFailedError("minutes already exist for ritual plan " + ritualID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	minutes := domain.RitualMinutes{
		MinutesID:       uuid.NewString(),
		RitualID:        ritualID,
		Content:         req.Content,
		AttendanceCount: req.AttendanceCount,
		VisitorsCount:   req.VisitorsCount,
		Status:          domain.MinutesDraft,
		Version:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.MemberID,
		},
	}

	if err := s.minutesRepo.SaveMinutes(ctx, minutes); err != nil {
		// A concurrent creator may have won the one-per-plan constraint.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewPreconditionFailedError("minutes already exist for ritual plan " + ritualID)
		}
		logger.Error("Failed to save ritual minutes in repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, fmt.Errorf("failed to create minutes for ritual plan %s: %w", ritualID, err)
	}

	logger.Info("Ritual minutes created", slog.String("ritual_id", ritualID), slog.String("minutes_id", minutes.MinutesID))
	return &minutes, nil
}

// GetMinutesByRitualID retrieves the plan's minutes record.
func (s *ritualMinutesService) GetMinutesByRitualID(ctx context.Context, ritualID string) (*domain.RitualMinutes, error) {
	return s.minutesRepo.FindMinutesByRitualID(ctx, ritualID)
}

// UpdateMinutes edits the record. Finalized minutes are immutable; any edit
// attempt yields ErrConflict with stored state untouched.
func (s *ritualMinutesService) UpdateMinutes(ctx context.Context, actor domain.Actor, ritualID string, req dto.UpdateMinutesRequest) (*domain.RitualMinutes, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpCreateMinutes, plan); err != nil {
		logger.Warn("Authorization failed for UpdateMinutes", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	minutes, err := s.minutesRepo.FindMinutesByRitualID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if !minutes.IsEditable() {
		return nil, apperrors.NewConflictError("minutes for ritual plan " + ritualID + " are finalized and immutable")
	}

	if req.Content != nil {
		minutes.Content = *req.Content
	}
	if req.AttendanceCount != nil {
		if *req.AttendanceCount < 0 {
			return nil, apperrors.NewValidationFailedError("attendance count must not be negative")
		}
		minutes.AttendanceCount = *req.AttendanceCount
	}
	if req.VisitorsCount != nil {
		if *req.VisitorsCount < 0 {
			return nil, apperrors.NewValidationFailedError("visitor count must not be negative")
		}
		minutes.VisitorsCount = *req.VisitorsCount
	}

	minutes.LastUpdatedAt = time.Now().UTC()
	minutes.LastUpdatedBy = actor.MemberID

	if err := s.minutesRepo.UpdateMinutes(ctx, *minutes); err != nil {
		logger.Warn("Ritual minutes update rejected by repository", slog.String("error", err.Error()), slog.String("minutes_id", minutes.MinutesID))
		return nil, err
	}
	minutes.Version++

	logger.Info("Ritual minutes updated", slog.String("ritual_id", ritualID), slog.String("minutes_id", minutes.MinutesID))
	return minutes, nil
}

// FinalizeMinutes performs the one-way draft -> finalized transition. A second
// finalize, or one racing a concurrent finalize, yields ErrConflict.
func (s *ritualMinutesService) FinalizeMinutes(ctx context.Context, actor domain.Actor, ritualID string) (*domain.RitualMinutes, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpFinalizeMinutes, plan); err != nil {
		logger.Warn("Authorization failed for FinalizeMinutes", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	minutes, err := s.minutesRepo.FindMinutesByRitualID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if minutes.Status != domain.MinutesDraft {
		return nil, apperrors.NewConflictError("minutes for ritual plan " + ritualID + " are already finalized")
	}

	minutes.Status = domain.MinutesFinalized
	minutes.LastUpdatedAt = time.Now().UTC()
	minutes.LastUpdatedBy = actor.MemberID

	if err := s.minutesRepo.UpdateMinutes(ctx, *minutes); err != nil {
		logger.Warn("Ritual minutes finalize rejected by repository", slog.String("error", err.Error()), slog.String("minutes_id", minutes.MinutesID))
		return nil, err
	}
	minutes.Version++

	logger.Info("Ritual minutes finalized", slog.String("ritual_id", ritualID), slog.String("minutes_id", minutes.MinutesID))
	return minutes, nil
}
