package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ritualRepo := newPgxRitualRepository(dbPool)
	roleRepo := newPgxRitualRoleRepository(dbPool)
	workRepo := newPgxRitualWorkRepository(dbPool)
	minutesRepo := newPgxRitualMinutesRepository(dbPool)
	attachmentRepo := newPgxRitualAttachmentRepository(dbPool)
	memberRepo := newPgxMemberRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RitualRepo:     ritualRepo,
		RoleRepo:       roleRepo,
		WorkRepo:       workRepo,
		MinutesRepo:    minutesRepo,
		AttachmentRepo: attachmentRepo,
		MemberRepo:     memberRepo,
	}
}
