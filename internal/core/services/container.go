package services

import (
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/platform/config"
)

// NewContainer creates the service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ritual = NewRitualService(repos.RitualRepo)
	container.Role = NewRitualRoleService(repos.RoleRepo, repos.RitualRepo, repos.MemberRepo, cfg.UniqueRoleTypes)
	container.Work = NewRitualWorkService(repos.WorkRepo, repos.RitualRepo, repos.MemberRepo)
	container.Minutes = NewRitualMinutesService(repos.MinutesRepo, repos.RitualRepo)
	container.Attachment = NewRitualAttachmentService(repos.AttachmentRepo, repos.RitualRepo)
	container.Member = NewMemberService(repos.MemberRepo)
	container.Auth = NewAuthService(repos.MemberRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
