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

type PgxRitualMinutesRepository struct {
	BaseRepository
}

// newPgxRitualMinutesRepository creates a new repository for minutes data.
func newPgxRitualMinutesRepository(pool *pgxpool.Pool) portsrepo.RitualMinutesRepository {
	return &PgxRitualMinutesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RitualMinutesRepository = (*PgxRitualMinutesRepository)(nil)

var FULL_MINUTES_SELECT_QUERY = `
SELECT
	m.minutes_id, m.ritual_id, m.content, m.attendance_count, m.visitors_count,
	m.status, m.version,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
FROM ritual_minutes m
`

func scanMinutes(row pgx.Row) (*domain.RitualMinutes, error) {
	var m domain.RitualMinutes
	err := row.Scan(
		&m.MinutesID,
		&m.RitualID,
		&m.Content,
		&m.AttendanceCount,
		&m.VisitorsCount,
		&m.Status,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMinutes persists a new minutes record. The ritual_id unique constraint
// enforces the one-per-plan rule at the database, so a racing second creator
// fails here rather than overwriting.
func (r *PgxRitualMinutesRepository) SaveMinutes(ctx context.Context, minutes domain.RitualMinutes) error {
	query := `
		INSERT INTO ritual_minutes (
			minutes_id, ritual_id, content, attendance_count, visitors_count,
			status, version,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		minutes.MinutesID,
		minutes.RitualID,
		minutes.Content,
		minutes.AttendanceCount,
		minutes.VisitorsCount,
		minutes.Status,
		1,
		minutes.CreatedAt,
		minutes.CreatedBy,
		minutes.LastUpdatedAt,
		minutes.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "minutes already exist for ritual plan "+minutes.RitualID, apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("ritual plan " + minutes.RitualID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save minutes "+minutes.MinutesID, err)
	}
	return nil
}

func (r *PgxRitualMinutesRepository) FindMinutesByID(ctx context.Context, minutesID string) (*domain.RitualMinutes, error) {
	query := FULL_MINUTES_SELECT_QUERY + `WHERE m.minutes_id = $1;`
	minutes, err := scanMinutes(r.Pool.QueryRow(ctx, query, minutesID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("minutes " + minutesID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find minutes "+minutesID, err)
	}
	return minutes, nil
}

func (r *PgxRitualMinutesRepository) FindMinutesByRitualID(ctx context.Context, ritualID string) (*domain.RitualMinutes, error) {
	query := FULL_MINUTES_SELECT_QUERY + `WHERE m.ritual_id = $1;`
	minutes, err := scanMinutes(r.Pool.QueryRow(ctx, query, ritualID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no minutes exist for ritual plan " + ritualID)
		}
		return nil, apperrors.NewAppError(500, "failed to find minutes for ritual plan "+ritualID, err)
	}
	return minutes, nil
}

// UpdateMinutes writes content or status changes, conditional on the version
// the caller read so concurrent finalizes have at most one winner.
func (r *PgxRitualMinutesRepository) UpdateMinutes(ctx context.Context, minutes domain.RitualMinutes) error {
	query := `
		UPDATE ritual_minutes
		SET content = $1, attendance_count = $2, visitors_count = $3, status = $4,
		    last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE minutes_id = $7 AND version = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		minutes.Content,
		minutes.AttendanceCount,
		minutes.VisitorsCount,
		minutes.Status,
		minutes.LastUpdatedAt,
		minutes.LastUpdatedBy,
		minutes.MinutesID,
		minutes.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update minutes "+minutes.MinutesID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewConflictError("optimistic locking failed: minutes " + minutes.MinutesID)
	}
	return nil
}
