package repositories

// RepositoryProvider holds instances of all repositories, wired once at
// startup and handed to the service container.
type RepositoryProvider struct {
	RitualRepo     RitualPlanRepositoryWithTx
	RoleRepo       RitualRoleRepository
	WorkRepo       RitualWorkRepository
	MinutesRepo    RitualMinutesRepository
	AttachmentRepo RitualAttachmentRepository
	MemberRepo     MemberReader
}
