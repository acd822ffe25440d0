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

type PgxRitualWorkRepository struct {
	BaseRepository
}

// newPgxRitualWorkRepository creates a new repository for agenda item data.
func newPgxRitualWorkRepository(pool *pgxpool.Pool) portsrepo.RitualWorkRepository {
	return &PgxRitualWorkRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RitualWorkRepository = (*PgxRitualWorkRepository)(nil)

var FULL_WORK_SELECT_QUERY = `
SELECT
	w.work_id, w.ritual_id, w.title, w.description, w.work_type, w.responsible,
	w.estimated_duration, w."order", w.status, w.attachment_id,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM ritual_works w
`

func scanWork(row pgx.Row) (*domain.RitualWork, error) {
	var work domain.RitualWork
	err := row.Scan(
		&work.WorkID,
		&work.RitualID,
		&work.Title,
		&work.Description,
		&work.WorkType,
		&work.Responsible,
		&work.EstimatedDuration,
		&work.Order,
		&work.Status,
		&work.AttachmentID,
		&work.CreatedAt,
		&work.CreatedBy,
		&work.LastUpdatedAt,
		&work.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *PgxRitualWorkRepository) SaveWork(ctx context.Context, work domain.RitualWork) error {
	query := `
		INSERT INTO ritual_works (
			work_id, ritual_id, title, description, work_type, responsible,
			estimated_duration, "order", status, attachment_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		work.WorkID,
		work.RitualID,
		work.Title,
		work.Description,
		work.WorkType,
		work.Responsible,
		work.EstimatedDuration,
		work.Order,
		work.Status,
		work.AttachmentID,
		work.CreatedAt,
		work.CreatedBy,
		work.LastUpdatedAt,
		work.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("work ID " + work.WorkID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("ritual plan " + work.RitualID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save work "+work.WorkID, err)
	}
	return nil
}

func (r *PgxRitualWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.RitualWork, error) {
	query := FULL_WORK_SELECT_QUERY + `WHERE w.work_id = $1;`
	work, err := scanWork(r.Pool.QueryRow(ctx, query, workID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("work " + workID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find work "+workID, err)
	}
	return work, nil
}

func (r *PgxRitualWorkRepository) ListWorksByRitualID(ctx context.Context, ritualID string) ([]domain.RitualWork, error) {
	query := FULL_WORK_SELECT_QUERY + `WHERE w.ritual_id = $1 ORDER BY w."order" ASC, w.created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, ritualID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query works for ritual plan "+ritualID, err)
	}
	defer rows.Close()

	var works []domain.RitualWork
	for rows.Next() {
		work, scanErr := scanWork(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan work row", scanErr)
		}
		works = append(works, *work)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating work rows", err)
	}
	return works, nil
}

// NextWorkOrder returns max(existing orders) + 1 for the plan, or 1 for an
// empty agenda.
func (r *PgxRitualWorkRepository) NextWorkOrder(ctx context.Context, ritualID string) (int, error) {
	query := `SELECT COALESCE(MAX("order"), 0) + 1 FROM ritual_works WHERE ritual_id = $1;`
	var next int
	if err := r.Pool.QueryRow(ctx, query, ritualID).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to compute next work order for ritual plan "+ritualID, err)
	}
	return next, nil
}

func (r *PgxRitualWorkRepository) UpdateWork(ctx context.Context, work domain.RitualWork) error {
	query := `
		UPDATE ritual_works
		SET title = $1, description = $2, work_type = $3, responsible = $4,
		    estimated_duration = $5, "order" = $6, status = $7, attachment_id = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE work_id = $11;
	`
	result, err := r.Pool.Exec(ctx, query,
		work.Title,
		work.Description,
		work.WorkType,
		work.Responsible,
		work.EstimatedDuration,
		work.Order,
		work.Status,
		work.AttachmentID,
		work.LastUpdatedAt,
		work.LastUpdatedBy,
		work.WorkID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update work "+work.WorkID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("work " + work.WorkID + " not found")
	}
	return nil
}

func (r *PgxRitualWorkRepository) DeleteWork(ctx context.Context, workID string) error {
	query := `DELETE FROM ritual_works WHERE work_id = $1;`
	result, err := r.Pool.Exec(ctx, query, workID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete work "+workID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("work " + workID + " not found")
	}
	return nil
}
