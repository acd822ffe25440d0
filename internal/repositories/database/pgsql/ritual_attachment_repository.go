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

type PgxRitualAttachmentRepository struct {
	BaseRepository
}

// newPgxRitualAttachmentRepository creates a new repository for attachment metadata.
func newPgxRitualAttachmentRepository(pool *pgxpool.Pool) portsrepo.RitualAttachmentRepository {
	return &PgxRitualAttachmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RitualAttachmentRepository = (*PgxRitualAttachmentRepository)(nil)

var FULL_ATTACHMENT_SELECT_QUERY = `
SELECT
	a.attachment_id, a.ritual_id, a.title, a.description, a.attachment_type,
	a.file_key, a.uploaded_by,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM ritual_attachments a
`

func scanAttachment(row pgx.Row) (*domain.RitualAttachment, error) {
	var a domain.RitualAttachment
	err := row.Scan(
		&a.AttachmentID,
		&a.RitualID,
		&a.Title,
		&a.Description,
		&a.AttachmentType,
		&a.FileKey,
		&a.UploadedBy,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxRitualAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.RitualAttachment) error {
	query := `
		INSERT INTO ritual_attachments (
			attachment_id, ritual_id, title, description, attachment_type,
			file_key, uploaded_by,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		attachment.AttachmentID,
		attachment.RitualID,
		attachment.Title,
		attachment.Description,
		attachment.AttachmentType,
		attachment.FileKey,
		attachment.UploadedBy,
		attachment.CreatedAt,
		attachment.CreatedBy,
		attachment.LastUpdatedAt,
		attachment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("attachment ID " + attachment.AttachmentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("ritual plan " + attachment.RitualID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save attachment "+attachment.AttachmentID, err)
	}
	return nil
}

func (r *PgxRitualAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.RitualAttachment, error) {
	query := FULL_ATTACHMENT_SELECT_QUERY + `WHERE a.attachment_id = $1;`
	attachment, err := scanAttachment(r.Pool.QueryRow(ctx, query, attachmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("attachment " + attachmentID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find attachment "+attachmentID, err)
	}
	return attachment, nil
}

func (r *PgxRitualAttachmentRepository) ListAttachmentsByRitualID(ctx context.Context, ritualID string) ([]domain.RitualAttachment, error) {
	query := FULL_ATTACHMENT_SELECT_QUERY + `WHERE a.ritual_id = $1 ORDER BY a.created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ritualID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments for ritual plan "+ritualID, err)
	}
	defer rows.Close()

	var attachments []domain.RitualAttachment
	for rows.Next() {
		attachment, scanErr := scanAttachment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row", scanErr)
		}
		attachments = append(attachments, *attachment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows", err)
	}
	return attachments, nil
}

func (r *PgxRitualAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	query := `DELETE FROM ritual_attachments WHERE attachment_id = $1;`
	result, err := r.Pool.Exec(ctx, query, attachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment "+attachmentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("attachment " + attachmentID + " not found")
	}
	return nil
}
