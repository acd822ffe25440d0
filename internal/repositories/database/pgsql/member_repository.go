package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
)

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository over the member directory.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberReader {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MemberReader = (*PgxMemberRepository)(nil)

var FULL_MEMBER_SELECT_QUERY = `
SELECT
	m.member_id, m.username, m.password_hash, m.name, m.symbolic_name,
	m.office, m.degree, m.is_active,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by, m.deleted_at
FROM members m
`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.MemberID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.SymbolicName,
		&m.Office,
		&m.Degree,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := FULL_MEMBER_SELECT_QUERY + `WHERE m.member_id = $1 AND m.deleted_at IS NULL;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("member " + memberID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find member "+memberID, err)
	}
	return member, nil
}

func (r *PgxMemberRepository) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	query := FULL_MEMBER_SELECT_QUERY + `WHERE m.username = $1 AND m.deleted_at IS NULL;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("member with username " + username + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find member by username", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) FindMembersByIDs(ctx context.Context, memberIDs []string) (map[string]domain.Member, error) {
	if len(memberIDs) == 0 {
		return map[string]domain.Member{}, nil
	}

	query := FULL_MEMBER_SELECT_QUERY + `WHERE m.member_id = ANY($1) AND m.deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, memberIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members by IDs", err)
	}
	defer rows.Close()

	members := make(map[string]domain.Member, len(memberIDs))
	for rows.Next() {
		member, scanErr := scanMember(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", scanErr)
		}
		members[member.MemberID] = *member
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows", err)
	}
	return members, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	query := FULL_MEMBER_SELECT_QUERY + `
		WHERE m.is_active = true AND m.deleted_at IS NULL
		ORDER BY m.name ASC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		member, scanErr := scanMember(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", scanErr)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows", err)
	}
	return members, nil
}
