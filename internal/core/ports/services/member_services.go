package services

import (
	"context"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// MemberSvcFacade exposes the member directory to the ritual engine and the
// transport layer. The engine consumes it for actor resolution and display
// names only, never for persistence.
type MemberSvcFacade interface {
	// ResolveActor turns an authenticated member ID into the Actor value
	// (office + degree) threaded into engine calls.
	ResolveActor(ctx context.Context, memberID string) (domain.Actor, error)

	// GetMemberByID retrieves a member's directory record.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ResolveMemberNames maps member IDs to display names for response
	// assembly. Unknown IDs are absent from the result.
	ResolveMemberNames(ctx context.Context, memberIDs []string) (map[string]string, error)

	// ListMembers retrieves active members with limit/offset pagination.
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
}

// AuthSvcFacade issues access tokens for the thin transport layer. Session
// and token lifecycle beyond login is out of engine scope.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed access token plus the
	// authenticated member.
	Login(ctx context.Context, username, password string) (string, *domain.Member, error)
}
