package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// memberService exposes the member directory. The ritual engine consumes it
// for actor resolution and display-name assembly only.
type memberService struct {
	memberRepo portsrepo.MemberReader
}

// NewMemberService creates a new member directory service.
func NewMemberService(memberRepo portsrepo.MemberReader) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// ResolveActor turns an authenticated member ID into the Actor value carried
// through every engine call. Inactive members cannot act.
func (s *memberService) ResolveActor(ctx context.Context, memberID string) (domain.Actor, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return domain.Actor{}, err
	}
	if !member.IsActive {
		return domain.Actor{}, apperrors.NewForbiddenError("member " + memberID + " is inactive")
	}
	return domain.Actor{
		MemberID: member.MemberID,
		Office:   member.Office,
		Degree:   member.Degree,
	}, nil
}

// GetMemberByID retrieves a member's directory record.
func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

// ResolveMemberNames maps member IDs to display names for response assembly.
func (s *memberService) ResolveMemberNames(ctx context.Context, memberIDs []string) (map[string]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(memberIDs) == 0 {
		return map[string]string{}, nil
	}

	members, err := s.memberRepo.FindMembersByIDs(ctx, memberIDs)
	if err != nil {
		logger.Error("Failed to resolve members from directory", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve member names: %w", err)
	}

	names := make(map[string]string, len(members))
	for id, member := range members {
		names[id] = member.DisplayName()
	}
	return names, nil
}

// ListMembers retrieves active members with limit/offset pagination.
func (s *memberService) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	members, err := s.memberRepo.ListMembers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []domain.Member{}
	}
	return members, nil
}
