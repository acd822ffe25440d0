package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/core/services"
	"github.com/luzyverdad/lodge_management_app/internal/utils"
)

const testJWTSecret = "test-secret-key"

type AuthServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	service        portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewAuthService(suite.mockMemberRepo, testJWTSecret, time.Hour, "lodge-management-app")
}

func (suite *AuthServiceTestSuite) activeMember(password string) *domain.Member {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.Member{
		MemberID:     uuid.NewString(),
		Username:     "secretary",
		PasswordHash: hash,
		Name:         "Bro. Ferreira",
		Office:       domain.OfficeSecretary,
		Degree:       3,
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	member := suite.activeMember("correct horse battery staple")

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, member.Username).Return(member, nil).Once()

	token, got, err := suite.service.Login(ctx, member.Username, "correct horse battery staple")

	suite.Require().NoError(err)
	suite.Equal(member.MemberID, got.MemberID)
	suite.NotEmpty(token)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal(member.MemberID, claims.Subject)
	suite.Equal("lodge-management-app", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	member := suite.activeMember("right password")

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, member.Username).Return(member, nil).Once()

	_, _, err := suite.service.Login(ctx, member.Username, "wrong password")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUsername() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, "nobody").
		Return(nil, apperrors.NewNotFoundError("member nobody not found")).Once()

	_, _, err := suite.service.Login(ctx, "nobody", "whatever")

	// Unknown usernames are indistinguishable from bad passwords.
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveMember() {
	ctx := context.Background()
	member := suite.activeMember("valid password")
	member.IsActive = false

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, member.Username).Return(member, nil).Once()

	_, _, err := suite.service.Login(ctx, member.Username, "valid password")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
