package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portsrepo "github.com/luzyverdad/lodge_management_app/internal/core/ports/repositories"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
	"github.com/luzyverdad/lodge_management_app/internal/utils"
)

// authService issues access tokens. Credential storage and token lifecycle
// beyond login live outside the engine.
type authService struct {
	memberRepo portsrepo.MemberReader
	jwtSecret  string
	jwtExpiry  time.Duration
	jwtIssuer  string
}

// NewAuthService creates a new authentication service.
func NewAuthService(memberRepo portsrepo.MemberReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		memberRepo: memberRepo,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
		jwtIssuer:  jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed access token plus the
// authenticated member. Unknown usernames, wrong passwords and inactive
// members all fail with the same forbidden error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Member, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.memberRepo.FindMemberByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.NewForbiddenError("invalid username or password")
		}
		logger.Error("Failed to look up member for login", slog.String("error", err.Error()))
		return "", nil, err
	}
	if !member.IsActive || !utils.CheckPasswordHash(password, member.PasswordHash) {
		return "", nil, apperrors.NewForbiddenError("invalid username or password")
	}

	token, err := utils.GenerateJWT(member.MemberID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return "", nil, err
	}

	logger.Info("Member logged in", slog.String("member_id", member.MemberID))
	return token, member, nil
}
