package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
	"github.com/luzyverdad/lodge_management_app/internal/utils/pagination"
)

type PgxRitualRepository struct {
	BaseRepository
}

// newPgxRitualRepository creates a new repository for ritual plan data.
func newPgxRitualRepository(pool *pgxpool.Pool) portsrepo.RitualPlanRepositoryWithTx {
	return &PgxRitualRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRitualRepository implements portsrepo.RitualPlanRepositoryWithTx
var _ portsrepo.RitualPlanRepositoryWithTx = (*PgxRitualRepository)(nil)

var FULL_RITUAL_SELECT_QUERY = `
SELECT
	r.ritual_id, r.title, r.description, r.date, r.start_time, r.end_time,
	r.ritual_type, r.degree, r.status, r.event_id, r.approved_by, r.version,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM ritual_plans r
`

func scanRitual(row pgx.Row) (*domain.RitualPlan, error) {
	var p domain.RitualPlan
	err := row.Scan(
		&p.RitualID,
		&p.Title,
		&p.Description,
		&p.Date,
		&p.StartTime,
		&p.EndTime,
		&p.RitualType,
		&p.Degree,
		&p.Status,
		&p.EventID,
		&p.ApprovedBy,
		&p.Version,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxRitualRepository) SaveRitual(ctx context.Context, plan domain.RitualPlan) error {
	query := `
		INSERT INTO ritual_plans (
			ritual_id, title, description, date, start_time, end_time,
			ritual_type, degree, status, event_id, approved_by, version,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		plan.RitualID,
		plan.Title,
		plan.Description,
		plan.Date,
		plan.StartTime,
		plan.EndTime,
		plan.RitualType,
		plan.Degree,
		plan.Status,
		plan.EventID,
		plan.ApprovedBy,
		1,
		plan.CreatedAt,
		plan.CreatedBy,
		plan.LastUpdatedAt,
		plan.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("ritual plan ID " + plan.RitualID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save ritual plan "+plan.RitualID, err)
	}
	return nil
}

func (r *PgxRitualRepository) FindRitualByID(ctx context.Context, ritualID string) (*domain.RitualPlan, error) {
	query := FULL_RITUAL_SELECT_QUERY + `WHERE r.ritual_id = $1;`
	plan, err := scanRitual(r.Pool.QueryRow(ctx, query, ritualID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("ritual plan " + ritualID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find ritual plan "+ritualID, err)
	}
	return plan, nil
}

// ListRituals retrieves a paginated list of ritual plans using token-based pagination.
// Ordering is date DESC with created_at DESC as a stable tie-breaker.
func (r *PgxRitualRepository) ListRituals(ctx context.Context, filter domain.RitualListFilter, limit int, nextToken *string) ([]domain.RitualPlan, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	filterClause := `WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		filterClause += ` AND r.status = $` + strconv.Itoa(len(args))
	}
	if filter.RitualType != "" {
		args = append(args, filter.RitualType)
		filterClause += ` AND r.ritual_type = $` + strconv.Itoa(len(args))
	}
	if filter.Degree > 0 {
		args = append(args, filter.Degree)
		filterClause += ` AND r.degree = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		filterClause += ` AND r.date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		filterClause += ` AND r.date <= $` + strconv.Itoa(len(args))
	}
	if filter.Upcoming {
		filterClause += ` AND r.date >= CURRENT_DATE`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		filterClause += ` AND (r.title ILIKE $` + n + ` OR r.description ILIKE $` + n + `)`
	}

	orderByClause := `ORDER BY r.date DESC, r.created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		// Tuple comparison is concise and efficient in Postgres
		filterClause += ` AND (r.date, r.created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := FULL_RITUAL_SELECT_QUERY + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ritual plans", err)
	}
	defer rows.Close()

	plans := make([]domain.RitualPlan, 0, fetchLimit)
	for rows.Next() {
		plan, scanErr := scanRitual(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ritual plan row", scanErr)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ritual plan rows", err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := plans
	if len(plans) > limit {
		lastPlan := plans[limit-1] // last item actually included in this page
		newToken := pagination.EncodeToken(lastPlan.Date, lastPlan.CreatedAt)
		nextTokenVal = &newToken
		results = plans[:limit]
	}

	return results, nextTokenVal, nil
}

// UpdateRitualFields updates core plan fields, conditional on the version the
// caller read. A lost race surfaces as a conflict, not a silent overwrite.
func (r *PgxRitualRepository) UpdateRitualFields(ctx context.Context, plan domain.RitualPlan) error {
	query := `
		UPDATE ritual_plans
		SET title = $1, description = $2, date = $3, start_time = $4, end_time = $5,
		    ritual_type = $6, degree = $7, event_id = $8,
		    last_updated_at = $9, last_updated_by = $10, version = version + 1
		WHERE ritual_id = $11 AND version = $12;
	`
	result, err := r.Pool.Exec(ctx, query,
		plan.Title,
		plan.Description,
		plan.Date,
		plan.StartTime,
		plan.EndTime,
		plan.RitualType,
		plan.Degree,
		plan.EventID,
		plan.LastUpdatedAt,
		plan.LastUpdatedBy,
		plan.RitualID,
		plan.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ritual plan "+plan.RitualID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewConflictError("optimistic locking failed: ritual plan " + plan.RitualID)
	}
	return nil
}

// UpdateRitualStatus writes a status transition, conditional on the version the
// caller read so concurrent transitions have at most one winner.
func (r *PgxRitualRepository) UpdateRitualStatus(ctx context.Context, plan domain.RitualPlan) error {
	query := `
		UPDATE ritual_plans
		SET status = $1, approved_by = $2,
		    last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE ritual_id = $5 AND version = $6;
	`
	result, err := r.Pool.Exec(ctx, query,
		plan.Status,
		plan.ApprovedBy,
		plan.LastUpdatedAt,
		plan.LastUpdatedBy,
		plan.RitualID,
		plan.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of ritual plan "+plan.RitualID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewConflictError("optimistic locking failed: ritual plan " + plan.RitualID)
	}
	return nil
}
