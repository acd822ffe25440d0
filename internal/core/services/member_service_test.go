package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/core/services"
)

type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	service        portssvc.MemberSvcFacade
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewMemberService(suite.mockMemberRepo)
}

func (suite *MemberServiceTestSuite) TestResolveActor_Success() {
	ctx := context.Background()
	member := &domain.Member{
		MemberID: uuid.NewString(),
		Office:   domain.OfficeSeniorWarden,
		Degree:   3,
		IsActive: true,
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, member.MemberID).Return(member, nil).Once()

	actor, err := suite.service.ResolveActor(ctx, member.MemberID)

	suite.Require().NoError(err)
	suite.Equal(member.MemberID, actor.MemberID)
	suite.Equal(domain.OfficeSeniorWarden, actor.Office)
	suite.Equal(3, actor.Degree)
}

func (suite *MemberServiceTestSuite) TestResolveActor_InactiveMember() {
	ctx := context.Background()
	member := &domain.Member{
		MemberID: uuid.NewString(),
		Office:   domain.OfficeNone,
		Degree:   3,
		IsActive: false,
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, member.MemberID).Return(member, nil).Once()

	_, err := suite.service.ResolveActor(ctx, member.MemberID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MemberServiceTestSuite) TestResolveMemberNames_PrefersSymbolicName() {
	ctx := context.Background()
	ids := []string{"m-1", "m-2"}
	directory := map[string]domain.Member{
		"m-1": {MemberID: "m-1", Name: "Carlos Diaz", SymbolicName: "Hiram"},
		"m-2": {MemberID: "m-2", Name: "Pedro Ruiz"},
	}

	suite.mockMemberRepo.On("FindMembersByIDs", ctx, ids).Return(directory, nil).Once()

	names, err := suite.service.ResolveMemberNames(ctx, ids)

	suite.Require().NoError(err)
	suite.Equal("Hiram", names["m-1"])
	suite.Equal("Pedro Ruiz", names["m-2"])
}

func (suite *MemberServiceTestSuite) TestResolveMemberNames_EmptyInput() {
	ctx := context.Background()

	names, err := suite.service.ResolveMemberNames(ctx, nil)

	suite.Require().NoError(err)
	suite.Empty(names)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMembersByIDs", ctx, nil)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
