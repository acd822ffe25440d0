package repositories

import (
	"context"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// MemberReader defines read operations against the member directory. The
// directory is consumed, not owned, by the ritual engine: it supplies actor
// identity (office, degree) and display names.
type MemberReader interface {
	// FindMemberByID retrieves a member by their ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByUsername retrieves a member by their login username.
	FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error)

	// FindMembersByIDs retrieves a set of members keyed by ID. Missing IDs are
	// simply absent from the result map.
	FindMembersByIDs(ctx context.Context, memberIDs []string) (map[string]domain.Member, error)

	// ListMembers retrieves active members with limit/offset pagination.
	ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error)
}
