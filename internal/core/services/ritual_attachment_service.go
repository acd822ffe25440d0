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

// ritualAttachmentService manages attachment metadata records. File bytes
// live in external storage; only the opaque FileKey passes through here.
type ritualAttachmentService struct {
	attachmentRepo portsrepo.RitualAttachmentRepository
	ritualRepo     portsrepo.RitualPlanReader
}

// NewRitualAttachmentService creates a new attachment metadata service.
func NewRitualAttachmentService(attachmentRepo portsrepo.RitualAttachmentRepository, ritualRepo portsrepo.RitualPlanReader) portssvc.RitualAttachmentSvcFacade {
	return &ritualAttachmentService{
		attachmentRepo: attachmentRepo,
		ritualRepo:     ritualRepo,
	}
}

var _ portssvc.RitualAttachmentSvcFacade = (*ritualAttachmentService)(nil)

// AddAttachment records attachment metadata for a plan.
func (s *ritualAttachmentService) AddAttachment(ctx context.Context, actor domain.Actor, ritualID string, req dto.AddAttachmentRequest) (*domain.RitualAttachment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for AddAttachment", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return nil, err
	}

	attachmentType := domain.AttachmentType(req.AttachmentType)
	if !attachmentType.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown attachment type " + req.AttachmentType)
	}

	now := time.Now().UTC()
	attachment := domain.RitualAttachment{
		AttachmentID:   uuid.NewString(),
		RitualID:       ritualID,
		Title:          req.Title,
		Description:    req.Description,
		AttachmentType: attachmentType,
		FileKey:        req.FileKey,
		UploadedBy:     actor.MemberID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.MemberID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.MemberID,
		},
	}

	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		logger.Error("Failed to save ritual attachment in repository", slog.String("error", err.Error()), slog.String("ritual_id", ritualID))
		return nil, fmt.Errorf("failed to add attachment to ritual plan %s: %w", ritualID, err)
	}

	logger.Info("Ritual attachment added", slog.String("ritual_id", ritualID), slog.String("attachment_id", attachment.AttachmentID))
	return &attachment, nil
}

// ListAttachments returns the plan's attachment records.
func (s *ritualAttachmentService) ListAttachments(ctx context.Context, ritualID string) ([]domain.RitualAttachment, error) {
	if _, err := s.ritualRepo.FindRitualByID(ctx, ritualID); err != nil {
		return nil, err
	}
	attachments, err := s.attachmentRepo.ListAttachmentsByRitualID(ctx, ritualID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments for ritual plan %s: %w", ritualID, err)
	}
	if attachments == nil {
		attachments = []domain.RitualAttachment{}
	}
	return attachments, nil
}

// RemoveAttachment removes an attachment metadata record. The external file
// itself is the integrator's responsibility.
func (s *ritualAttachmentService) RemoveAttachment(ctx context.Context, actor domain.Actor, ritualID, attachmentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.ritualRepo.FindRitualByID(ctx, ritualID)
	if err != nil {
		return err
	}
	if err := AuthorizeRitualAction(actor, OpManageWorks, plan); err != nil {
		logger.Warn("Authorization failed for RemoveAttachment", slog.String("member_id", actor.MemberID), slog.String("ritual_id", ritualID))
		return err
	}

	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if attachment.RitualID != ritualID {
		return apperrors.NewNotFoundError("attachment " + attachmentID + " does not belong to ritual plan " + ritualID)
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		logger.Error("Failed to delete ritual attachment in repository", slog.String("error", err.Error()), slog.String("attachment_id", attachmentID))
		return err
	}

	logger.Info("Ritual attachment removed", slog.String("ritual_id", ritualID), slog.String("attachment_id", attachmentID))
	return nil
}
