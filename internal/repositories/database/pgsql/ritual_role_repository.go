package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
)

type PgxRitualRoleRepository struct {
	BaseRepository
}

// newPgxRitualRoleRepository creates a new repository for role assignment data.
func newPgxRitualRoleRepository(pool *pgxpool.Pool) portsrepo.RitualRoleRepository {
	return &PgxRitualRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RitualRoleRepository = (*PgxRitualRoleRepository)(nil)

var FULL_ROLE_SELECT_QUERY = `
SELECT
	rr.role_id, rr.ritual_id, rr.role_type, rr.custom_role, rr.assigned_to,
	rr.notes, rr.is_confirmed,
	rr.created_at, rr.created_by, rr.last_updated_at, rr.last_updated_by
FROM ritual_roles rr
`

func scanRole(row pgx.Row) (*domain.RitualRole, error) {
	var role domain.RitualRole
	err := row.Scan(
		&role.RoleID,
		&role.RitualID,
		&role.RoleType,
		&role.CustomRole,
		&role.AssignedTo,
		&role.Notes,
		&role.IsConfirmed,
		&role.CreatedAt,
		&role.CreatedBy,
		&role.LastUpdatedAt,
		&role.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *PgxRitualRoleRepository) SaveRole(ctx context.Context, role domain.RitualRole) error {
	query := `
		INSERT INTO ritual_roles (
			role_id, ritual_id, role_type, custom_role, assigned_to,
			notes, is_confirmed,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		role.RoleID,
		role.RitualID,
		role.RoleType,
		role.CustomRole,
		role.AssignedTo,
		role.Notes,
		role.IsConfirmed,
		role.CreatedAt,
		role.CreatedBy,
		role.LastUpdatedAt,
		role.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("role ID " + role.RoleID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("ritual plan " + role.RitualID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save role "+role.RoleID, err)
	}
	return nil
}

func (r *PgxRitualRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.RitualRole, error) {
	query := FULL_ROLE_SELECT_QUERY + `WHERE rr.role_id = $1;`
	role, err := scanRole(r.Pool.QueryRow(ctx, query, roleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("role " + roleID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find role "+roleID, err)
	}
	return role, nil
}

func (r *PgxRitualRoleRepository) FindRoleByType(ctx context.Context, ritualID string, roleType domain.RoleType) (*domain.RitualRole, error) {
	query := FULL_ROLE_SELECT_QUERY + `WHERE rr.ritual_id = $1 AND rr.role_type = $2 LIMIT 1;`
	role, err := scanRole(r.Pool.QueryRow(ctx, query, ritualID, roleType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no role of type " + string(roleType) + " on ritual plan " + ritualID)
		}
		return nil, apperrors.NewAppError(500, "failed to find role by type for ritual plan "+ritualID, err)
	}
	return role, nil
}

func (r *PgxRitualRoleRepository) ListRolesByRitualID(ctx context.Context, ritualID string) ([]domain.RitualRole, error) {
	query := FULL_ROLE_SELECT_QUERY + `WHERE rr.ritual_id = $1 ORDER BY rr.created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, ritualID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query roles for ritual plan "+ritualID, err)
	}
	defer rows.Close()

	var roles []domain.RitualRole
	for rows.Next() {
		role, scanErr := scanRole(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan role row", scanErr)
		}
		roles = append(roles, *role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating role rows", err)
	}
	return roles, nil
}

func (r *PgxRitualRoleRepository) UpdateRole(ctx context.Context, role domain.RitualRole) error {
	query := `
		UPDATE ritual_roles
		SET role_type = $1, custom_role = $2, assigned_to = $3, notes = $4, is_confirmed = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE role_id = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		role.RoleType,
		role.CustomRole,
		role.AssignedTo,
		role.Notes,
		role.IsConfirmed,
		role.LastUpdatedAt,
		role.LastUpdatedBy,
		role.RoleID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role "+role.RoleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("role " + role.RoleID + " not found")
	}
	return nil
}

func (r *PgxRitualRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	query := `DELETE FROM ritual_roles WHERE role_id = $1;`
	result, err := r.Pool.Exec(ctx, query, roleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete role "+roleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("role " + roleID + " not found")
	}
	return nil
}
